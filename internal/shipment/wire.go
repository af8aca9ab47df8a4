package shipment

import (
	"go.uber.org/zap"

	"shipflow/internal/carrier"
	"shipflow/internal/config"
	"shipflow/internal/order/repository"
	"shipflow/internal/shipment/controller"
	"shipflow/internal/shipment/usecase"
	"shipflow/internal/store"
)

func NewModule(client carrier.Client, pathStore *store.RedisStore, cfg *config.Config, logger *zap.Logger) *controller.ShipmentController {
	orderRepo := repository.NewStoreOrderRepository(pathStore)

	createUC := usecase.NewCreateShipmentUseCase(
		client,
		orderRepo,
		cfg.Mode,
		cfg.Carrier.PickupLocation,
		logger,
	)
	trackUC := usecase.NewTrackShipmentUseCase(client, logger)

	return controller.NewShipmentController(createUC, trackUC, logger)
}
