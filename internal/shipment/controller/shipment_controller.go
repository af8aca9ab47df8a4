package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipflow/internal/dto"
	apperrors "shipflow/internal/errors"
)

type CreateShipmentUseCase interface {
	CreateShipment(ctx context.Context, req dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error)
}

type TrackShipmentUseCase interface {
	Track(ctx context.Context, awb string) (json.RawMessage, error)
}

type ShipmentController struct {
	createUseCase CreateShipmentUseCase
	trackUseCase  TrackShipmentUseCase
	logger        *zap.Logger
}

func NewShipmentController(createUseCase CreateShipmentUseCase, trackUseCase TrackShipmentUseCase, logger *zap.Logger) *ShipmentController {
	return &ShipmentController{
		createUseCase: createUseCase,
		trackUseCase:  trackUseCase,
		logger:        logger,
	}
}

func (c *ShipmentController) CreateShipment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "Missing fields",
			Error:   "request body must be valid JSON",
		})
		return
	}

	resp, err := c.createUseCase.CreateShipment(r.Context(), req)
	if err != nil {
		c.handleCreateError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *ShipmentController) Track(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	awb := chi.URLParam(r, "awb")

	data, err := c.trackUseCase.Track(r.Context(), awb)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: ve.Message})
			return
		}

		logger.Error("tracking failed", zap.String("awb", awb), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Tracking failed",
			Error:   upstreamOrMessage(err),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.TrackResponse{Success: true, Data: data})
}

func (c *ShipmentController) handleCreateError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("create shipment rejected", zap.String("reason", ve.Message))
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: ve.Message})
		return
	}

	logger.Error("create shipment failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Message: "Shipment creation failed",
		Error:   upstreamOrMessage(err),
	})
}

// upstreamOrMessage prefers the carrier's own error body over the local
// error text, matching what callers of the HTTP surface expect to debug
// with.
func upstreamOrMessage(err error) any {
	if ce, ok := apperrors.IsCarrierError(err); ok {
		return ce.UpstreamBody()
	}
	return err.Error()
}

func (c *ShipmentController) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
