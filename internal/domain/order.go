package domain

// Order is the fulfillment view of an order record in the shared store.
// Shop-facing fields are written by the storefront; the lifecycle fields
// below are owned by this service.
type Order struct {
	OrderID string `json:"orderId,omitempty"`

	CustomerName string `json:"customerName,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`

	PaymentMethod string  `json:"payment_method,omitempty"`
	Price         float64 `json:"price,omitempty"`

	// Carrier-side identifiers are null when the carrier returned none.
	ShipmentID      *string `json:"shipmentId,omitempty"`
	ShipmentOrderID *string `json:"shipmentOrderId,omitempty"`
	AWBCode         string  `json:"awbCode,omitempty"`
	ShipmentMode    string  `json:"shipmentMode,omitempty"`
	ShippedAt       string  `json:"shippedAt,omitempty"`

	Status           string `json:"status,omitempty"`
	CancelRequested  bool   `json:"cancelRequested,omitempty"`
	CancelReason     string `json:"cancelReason,omitempty"`
	CancelledAt      string `json:"cancelledAt,omitempty"`
	CancelledByAdmin bool   `json:"cancelledByAdmin,omitempty"`
}

const (
	OrderStatusPending       = "Pending"
	OrderStatusPendingCancel = "Pending Cancel"
	OrderStatusCancelled     = "Cancelled"
)

const (
	ShipmentModeTest = "test"
	ShipmentModeLive = "live"
)

// AdminCancelReason is the fixed reason recorded on admin-approved cancellations.
const AdminCancelReason = "Approved by admin"

// CancelRequest is the user-facing cancellation request record, kept
// separately from the order it refers to.
type CancelRequest struct {
	OrderID     string `json:"orderId"`
	Reason      string `json:"reason"`
	RequestedAt string `json:"requestedAt"`
	Status      string `json:"status"`
}

const CancelRequestStatusPending = "Pending"
