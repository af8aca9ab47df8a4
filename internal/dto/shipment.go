package dto

import "encoding/json"

// CreateShipmentRequest is the inbound order for /create-shipment.
// Items stay loosely typed; normalization happens in the domain layer.
type CreateShipmentRequest struct {
	UserID        string           `json:"userId"`
	OrderID       FlexString       `json:"orderId"`
	CustomerName  string           `json:"customer_name"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	Pincode       FlexString       `json:"pincode"`
	Phone         FlexString       `json:"phone"`
	Email         string           `json:"email"`
	PaymentMethod string           `json:"payment_method"`
	Price         float64          `json:"price"`
	Items         []map[string]any `json:"items"`

	// Optional package overrides; zero means "use the physical defaults".
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

type CreateShipmentResponse struct {
	Success    bool   `json:"success"`
	Mode       string `json:"mode"`
	AWB        string `json:"awb"`
	OrderID    string `json:"order_id"`
	ShipmentID string `json:"shipment_id"`
}

type TrackResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type HealthResponse struct {
	OK   bool   `json:"ok"`
	Mode string `json:"mode"`
	Time string `json:"time"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}
