package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	cancelcontroller "shipflow/internal/cancellation/controller"
	"shipflow/internal/dto"
	shipmentcontroller "shipflow/internal/shipment/controller"
)

func NewRouter(
	shipmentCtrl *shipmentcontroller.ShipmentController,
	cancelCtrl *cancelcontroller.CancelController,
	mode string,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Post("/create-shipment", shipmentCtrl.CreateShipment)
	r.Get("/track/{awb}", shipmentCtrl.Track)

	r.Post("/request-cancel", cancelCtrl.RequestCancel)
	r.Post("/admin/approve-cancel", cancelCtrl.ApproveCancel)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(dto.HealthResponse{
			OK:   true,
			Mode: mode,
			Time: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			logger.Error("failed to encode health response", zap.Error(err))
		}
	})

	return r
}
