// Package carrier talks to the external shipping-logistics API. The
// Client interface is implemented twice: a real HTTP client for live
// mode and a canned client for test mode, selected once at startup so
// the orchestration layer stays mode-agnostic.
package carrier

import (
	"context"
	"encoding/json"
)

type Client interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	Track(ctx context.Context, awb string) (json.RawMessage, error)
	CancelOrders(ctx context.Context, ids []string) error
}

// Item is one order line in the carrier's payload shape.
type Item struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

// CreateOrderRequest is the carrier's adhoc order-creation payload.
type CreateOrderRequest struct {
	OrderID        string `json:"order_id"`
	OrderDate      string `json:"order_date"`
	PickupLocation string `json:"pickup_location"`

	BillingCustomerName string `json:"billing_customer_name"`
	BillingLastName     string `json:"billing_last_name"`
	BillingAddress      string `json:"billing_address"`
	BillingCity         string `json:"billing_city"`
	BillingPincode      string `json:"billing_pincode"`
	BillingState        string `json:"billing_state"`
	BillingCountry      string `json:"billing_country"`
	BillingEmail        string `json:"billing_email"`
	BillingPhone        string `json:"billing_phone"`

	ShippingIsBilling bool   `json:"shipping_is_billing"`
	PaymentMethod     string `json:"payment_method"`

	SubTotal   float64 `json:"sub_total"`
	OrderItems []Item  `json:"order_items"`

	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

// CreateOrderResponse models the carrier's create-order reply. The AWB
// code shows up in two places depending on the carrier's path through
// courier assignment; AWB() resolves them in priority order.
type CreateOrderResponse struct {
	OrderID    json.Number     `json:"order_id"`
	ShipmentID json.Number     `json:"shipment_id"`
	AWBCode    string          `json:"awb_code"`
	Response   *nestedResponse `json:"response"`
}

type nestedResponse struct {
	Data *nestedData `json:"data"`
}

type nestedData struct {
	AWBCode string `json:"awb_code"`
}

// AWB returns the carrier-assigned tracking code, trying the top-level
// field first and the nested response shape second. Empty means the
// carrier assigned none.
func (r *CreateOrderResponse) AWB() string {
	if r == nil {
		return ""
	}
	if r.AWBCode != "" {
		return r.AWBCode
	}
	if r.Response != nil && r.Response.Data != nil {
		return r.Response.Data.AWBCode
	}
	return ""
}
