package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipflow/internal/dto"
	apperrors "shipflow/internal/errors"
)

type RequestCancelUseCase interface {
	RequestCancel(ctx context.Context, userID, orderID, reason string) error
}

type ApproveCancelUseCase interface {
	ApproveCancel(ctx context.Context, userID, orderID string) error
}

type CancelController struct {
	requestUseCase RequestCancelUseCase
	approveUseCase ApproveCancelUseCase
	logger         *zap.Logger
}

func NewCancelController(requestUseCase RequestCancelUseCase, approveUseCase ApproveCancelUseCase, logger *zap.Logger) *CancelController {
	return &CancelController{
		requestUseCase: requestUseCase,
		approveUseCase: approveUseCase,
		logger:         logger,
	}
}

func (c *CancelController) RequestCancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RequestCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Missing fields"})
		return
	}

	err := c.requestUseCase.RequestCancel(r.Context(), req.UserID, req.OrderID.String(), req.Reason)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: ve.Message})
			return
		}

		logger.Error("cancel request failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Failed",
			Error:   err.Error(),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Cancel request submitted",
	})
}

func (c *CancelController) ApproveCancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ApproveCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Missing user/order"})
		return
	}

	err := c.approveUseCase.ApproveCancel(r.Context(), req.UserID, req.OrderID.String())
	if err != nil {
		switch {
		case isValidation(err):
			c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Missing user/order"})
		case isNotFound(err):
			c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: "Order not found"})
		default:
			logger.Error("approve cancel failed", zap.Error(err))
			c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
				Message: "Server error",
				Error:   err.Error(),
			})
		}
		return
	}

	c.writeJSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Order cancelled",
	})
}

func isValidation(err error) bool {
	_, ok := apperrors.IsValidationError(err)
	return ok
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}

func (c *CancelController) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
