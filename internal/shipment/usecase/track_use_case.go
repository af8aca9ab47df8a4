package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	apperrors "shipflow/internal/errors"
)

type TrackingCarrierClient interface {
	Track(ctx context.Context, awb string) (json.RawMessage, error)
}

// TrackShipmentUseCase forwards a tracking code to the carrier. The
// test-mode carrier returns canned data, so there is no mode branching
// here.
type TrackShipmentUseCase struct {
	carrier TrackingCarrierClient
	logger  *zap.Logger
}

func NewTrackShipmentUseCase(carrierClient TrackingCarrierClient, logger *zap.Logger) *TrackShipmentUseCase {
	return &TrackShipmentUseCase{
		carrier: carrierClient,
		logger:  logger,
	}
}

func (uc *TrackShipmentUseCase) Track(ctx context.Context, awb string) (json.RawMessage, error) {
	if strings.TrimSpace(awb) == "" {
		return nil, apperrors.NewValidationError("Missing awb", apperrors.ValidationDetail{
			Field:   "awb",
			Message: "awb is required",
		})
	}

	data, err := uc.carrier.Track(ctx, awb)
	if err != nil {
		uc.logger.Error("tracking failed", zap.String("awb", awb), zap.Error(err))
		return nil, err
	}

	return data, nil
}
