package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shipflow/internal/domain"
)

type CancellingCarrierClient interface {
	CancelOrders(ctx context.Context, ids []string) error
}

// ApproveCancelUseCase finalizes a cancellation. The carrier-side cancel
// is advisory: a failure there is logged and swallowed, never blocking
// local finalization.
type ApproveCancelUseCase struct {
	carrier CancellingCarrierClient
	orders  OrderRepository
	logger  *zap.Logger
}

func NewApproveCancelUseCase(carrierClient CancellingCarrierClient, orders OrderRepository, logger *zap.Logger) *ApproveCancelUseCase {
	return &ApproveCancelUseCase{
		carrier: carrierClient,
		orders:  orders,
		logger:  logger,
	}
}

func (uc *ApproveCancelUseCase) ApproveCancel(ctx context.Context, userID, orderID string) error {
	if err := requireIdentifiers(userID, orderID); err != nil {
		return err
	}

	order, err := uc.orders.FindByID(ctx, userID, orderID)
	if err != nil {
		return err
	}

	if ids := carrierIDs(order); len(ids) > 0 {
		if err := uc.carrier.CancelOrders(ctx, ids); err != nil {
			uc.logger.Warn("carrier cancel failed, finalizing locally anyway",
				zap.String("orderId", orderID),
				zap.Strings("carrierIds", ids),
				zap.Error(err),
			)
		}
	}

	err = uc.orders.UpdateFields(ctx, userID, orderID, map[string]any{
		"status":           domain.OrderStatusCancelled,
		"cancelReason":     domain.AdminCancelReason,
		"cancelledAt":      time.Now().UTC().Format(time.RFC3339),
		"cancelledByAdmin": true,
	})
	if err != nil {
		return err
	}

	uc.logger.Info("order cancelled",
		zap.String("userId", userID),
		zap.String("orderId", orderID),
	)
	return nil
}

func carrierIDs(order *domain.Order) []string {
	var ids []string
	if order.ShipmentOrderID != nil && *order.ShipmentOrderID != "" {
		ids = append(ids, *order.ShipmentOrderID)
	}
	if order.ShipmentID != nil && *order.ShipmentID != "" {
		ids = append(ids, *order.ShipmentID)
	}
	return ids
}
