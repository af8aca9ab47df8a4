package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"shipflow/internal/domain"
	apperrors "shipflow/internal/errors"
)

type CancelRequestRepository interface {
	Save(ctx context.Context, userID, orderID string, req domain.CancelRequest) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateFields(ctx context.Context, userID, orderID string, fields map[string]any) error
}

// RequestCancelUseCase records a user's wish to cancel. It is advisory:
// the order stays in "Pending Cancel" until an admin approves. Repeat
// requests overwrite the previous one, landing in the same state.
type RequestCancelUseCase struct {
	cancelRequests CancelRequestRepository
	orders         OrderRepository
	logger         *zap.Logger
}

func NewRequestCancelUseCase(cancelRequests CancelRequestRepository, orders OrderRepository, logger *zap.Logger) *RequestCancelUseCase {
	return &RequestCancelUseCase{
		cancelRequests: cancelRequests,
		orders:         orders,
		logger:         logger,
	}
}

func (uc *RequestCancelUseCase) RequestCancel(ctx context.Context, userID, orderID, reason string) error {
	if err := requireIdentifiers(userID, orderID); err != nil {
		return err
	}

	req := domain.CancelRequest{
		OrderID:     orderID,
		Reason:      reason,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
		Status:      domain.CancelRequestStatusPending,
	}

	if err := uc.cancelRequests.Save(ctx, userID, orderID, req); err != nil {
		return err
	}

	err := uc.orders.UpdateFields(ctx, userID, orderID, map[string]any{
		"cancelRequested": true,
		"status":          domain.OrderStatusPendingCancel,
	})
	if err != nil {
		return err
	}

	uc.logger.Info("cancel requested",
		zap.String("userId", userID),
		zap.String("orderId", orderID),
	)
	return nil
}

func requireIdentifiers(userID, orderID string) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(userID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId is required",
		})
	}
	if strings.TrimSpace(orderID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Missing fields", details...)
	}
	return nil
}
