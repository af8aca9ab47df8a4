package carrier

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderResponse_AWB_TopLevel(t *testing.T) {
	var resp CreateOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_id": 123,
		"shipment_id": 456,
		"awb_code": "SR123456789"
	}`), &resp))

	assert.Equal(t, "SR123456789", resp.AWB())
	assert.Equal(t, "123", resp.OrderID.String())
	assert.Equal(t, "456", resp.ShipmentID.String())
}

func TestCreateOrderResponse_AWB_Nested(t *testing.T) {
	var resp CreateOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"order_id": 123,
		"response": {"data": {"awb_code": "SR987654321"}}
	}`), &resp))

	assert.Equal(t, "SR987654321", resp.AWB())
}

func TestCreateOrderResponse_AWB_TopLevelWins(t *testing.T) {
	var resp CreateOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"awb_code": "TOP",
		"response": {"data": {"awb_code": "NESTED"}}
	}`), &resp))

	assert.Equal(t, "TOP", resp.AWB())
}

func TestCreateOrderResponse_AWB_Absent(t *testing.T) {
	var resp CreateOrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{"order_id": 123}`), &resp))

	assert.Equal(t, "", resp.AWB())
}

func TestCreateOrderResponse_AWB_NilReceiver(t *testing.T) {
	var resp *CreateOrderResponse
	assert.Equal(t, "", resp.AWB())
}

func TestTestClient_CreateOrder_EmptyResponse(t *testing.T) {
	client := NewTestClient()

	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{OrderID: "ORD1"})
	require.NoError(t, err)
	assert.Equal(t, "", resp.AWB())
	assert.Equal(t, "", resp.ShipmentID.String())
}

func TestTestClient_Track_CannedPayload(t *testing.T) {
	client := NewTestClient()

	data, err := client.Track(context.Background(), "AWB-DEL-20260901-123456")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "AWB-DEL-20260901-123456", payload["awb"])
	assert.Equal(t, "In Transit", payload["current_status"])
	assert.Contains(t, payload["message"], "TEST MODE")
}

func TestTestClient_CancelOrders_NoOp(t *testing.T) {
	client := NewTestClient()

	assert.NoError(t, client.CancelOrders(context.Background(), []string{"1", "2"}))
}
