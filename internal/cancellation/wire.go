package cancellation

import (
	"go.uber.org/zap"

	"shipflow/internal/cancellation/controller"
	"shipflow/internal/cancellation/usecase"
	"shipflow/internal/carrier"
	"shipflow/internal/order/repository"
	"shipflow/internal/store"
)

func NewModule(client carrier.Client, pathStore *store.RedisStore, logger *zap.Logger) *controller.CancelController {
	orderRepo := repository.NewStoreOrderRepository(pathStore)
	cancelRepo := repository.NewStoreCancelRequestRepository(pathStore)

	requestUC := usecase.NewRequestCancelUseCase(cancelRepo, orderRepo, logger)
	approveUC := usecase.NewApproveCancelUseCase(client, orderRepo, logger)

	return controller.NewCancelController(requestUC, approveUC, logger)
}
