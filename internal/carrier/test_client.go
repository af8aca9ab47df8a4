package carrier

import (
	"context"
	"encoding/json"
	"fmt"
)

// TestClient simulates the carrier for test mode. It never touches the
// network: order creation returns an empty response (forcing the
// fallback tracking code downstream), tracking returns a canned payload,
// and cancellation is a no-op.
type TestClient struct{}

func NewTestClient() *TestClient {
	return &TestClient{}
}

func (c *TestClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	return &CreateOrderResponse{}, nil
}

func (c *TestClient) Track(ctx context.Context, awb string) (json.RawMessage, error) {
	canned := map[string]any{
		"awb":            awb,
		"current_status": "In Transit",
		"message":        "TEST MODE - this is sample tracking data",
	}

	data, err := json.Marshal(canned)
	if err != nil {
		return nil, fmt.Errorf("encoding canned tracking data: %w", err)
	}
	return json.RawMessage(data), nil
}

func (c *TestClient) CancelOrders(ctx context.Context, ids []string) error {
	return nil
}
