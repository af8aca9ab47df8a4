package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shipflow/internal/carrier"
	"shipflow/internal/domain"
	"shipflow/internal/dto"
	apperrors "shipflow/internal/errors"
)

// Mock implementations

type mockCarrierClient struct {
	CreateOrderFunc func(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error)
	createCalls     int
}

func (m *mockCarrierClient) CreateOrder(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error) {
	m.createCalls++
	return m.CreateOrderFunc(ctx, req)
}

type mockOrderRepository struct {
	FindByIDFunc func(ctx context.Context, userID, orderID string) (*domain.Order, error)
	updatedPath  [2]string
	updated      map[string]any
	updateCalls  int
	updateErr    error
}

func (m *mockOrderRepository) FindByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, orderID)
	}
	return nil, apperrors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) UpdateFields(ctx context.Context, userID, orderID string, fields map[string]any) error {
	m.updateCalls++
	m.updatedPath = [2]string{userID, orderID}
	m.updated = fields
	return m.updateErr
}

// Helpers

func validRequest() dto.CreateShipmentRequest {
	return dto.CreateShipmentRequest{
		UserID:       "U1",
		OrderID:      "ORD1",
		CustomerName: "A B C",
		Address:      "X",
		City:         "Y",
		Pincode:      "400001",
		Items: []map[string]any{
			{"name": "Shirt", "units": 2.0, "selling_price": 250.0},
		},
	}
}

func newTestCreateUseCase(client CarrierClient, orders OrderRepository, mode string) *CreateShipmentUseCase {
	return NewCreateShipmentUseCase(client, orders, mode, "Primary", zap.NewNop())
}

// Tests

func TestCreateShipment_MissingFields(t *testing.T) {
	client := &mockCarrierClient{}
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeTest)

	req := validRequest()
	req.CustomerName = ""
	req.Pincode = ""

	_, err := uc.CreateShipment(context.Background(), req)
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %T", err)
	assert.Len(t, ve.Details, 2)

	assert.Equal(t, 0, client.createCalls, "no carrier call on invalid input")
	assert.Equal(t, 0, orders.updateCalls, "no store write on invalid input")
}

func TestCreateShipment_EmptyItems(t *testing.T) {
	client := &mockCarrierClient{}
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeTest)

	req := validRequest()
	req.Items = nil

	_, err := uc.CreateShipment(context.Background(), req)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, client.createCalls)
	assert.Equal(t, 0, orders.updateCalls)
}

func TestCreateShipment_TestMode(t *testing.T) {
	// The real test-mode client: no network behind it, empty carrier
	// response, so the fallback code must be used.
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(carrier.NewTestClient(), orders, domain.ShipmentModeTest)

	resp, err := uc.CreateShipment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "test", resp.Mode)
	assert.Regexp(t, fallbackAWBPattern, resp.AWB)
	assert.Equal(t, "ORD1", resp.OrderID)
	assert.Equal(t, "test-shipment", resp.ShipmentID)

	require.Equal(t, 1, orders.updateCalls)
	assert.Equal(t, [2]string{"U1", "ORD1"}, orders.updatedPath)
	assert.Equal(t, "test", orders.updated["shipmentMode"])
	assert.Equal(t, resp.AWB, orders.updated["awbCode"])
	assert.Equal(t, "A B C", orders.updated["customerName"])
	assert.Nil(t, orders.updated["shipmentId"], "carrier ids are null in test mode")
	assert.Nil(t, orders.updated["shipmentOrderId"])
	assert.NotEmpty(t, orders.updated["shippedAt"])
}

func TestCreateShipment_LiveMode_CarrierAWB(t *testing.T) {
	var gotOrder carrier.CreateOrderRequest
	client := &mockCarrierClient{
		CreateOrderFunc: func(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error) {
			gotOrder = req
			return &carrier.CreateOrderResponse{
				OrderID:    json.Number("111"),
				ShipmentID: json.Number("222"),
				AWBCode:    "SR555666777",
			}, nil
		},
	}
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeLive)

	resp, err := uc.CreateShipment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "SR555666777", resp.AWB, "carrier code wins over fallback")
	assert.Equal(t, "111", resp.OrderID)
	assert.Equal(t, "222", resp.ShipmentID)
	assert.Equal(t, "111", orders.updated["shipmentOrderId"])
	assert.Equal(t, "222", orders.updated["shipmentId"])

	// Payload mapping
	assert.Equal(t, "A", gotOrder.BillingCustomerName, "first space splits the name")
	assert.Equal(t, "B C", gotOrder.BillingLastName)
	assert.Equal(t, "Primary", gotOrder.PickupLocation)
	assert.True(t, gotOrder.ShippingIsBilling)
	assert.Equal(t, "India", gotOrder.BillingCountry)
	assert.Equal(t, "demo@mail.com", gotOrder.BillingEmail)
	assert.Equal(t, "9999999999", gotOrder.BillingPhone)
	assert.Equal(t, "Prepaid", gotOrder.PaymentMethod)
	assert.Equal(t, 10.0, gotOrder.Length)
	assert.Equal(t, 10.0, gotOrder.Breadth)
	assert.Equal(t, 10.0, gotOrder.Height)
	assert.Equal(t, 0.5, gotOrder.Weight)
	assert.Equal(t, 500.0, gotOrder.SubTotal)
	require.Len(t, gotOrder.OrderItems, 1)
	assert.Equal(t, 2, gotOrder.OrderItems[0].Units)
}

func TestCreateShipment_LiveMode_NoAWBFromCarrier(t *testing.T) {
	client := &mockCarrierClient{
		CreateOrderFunc: func(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error) {
			return &carrier.CreateOrderResponse{
				OrderID:    json.Number("111"),
				ShipmentID: json.Number("222"),
			}, nil
		},
	}
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeLive)

	resp, err := uc.CreateShipment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, fallbackAWBPattern, resp.AWB, "fallback generator fills in for the carrier")
	assert.Equal(t, resp.AWB, orders.updated["awbCode"])
}

func TestCreateShipment_CarrierFailure_NoWrite(t *testing.T) {
	client := &mockCarrierClient{
		CreateOrderFunc: func(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error) {
			return nil, apperrors.NewCarrierError("shipment creation failed", []byte(`{"message":"Wrong Pincode"}`), nil)
		},
	}
	orders := &mockOrderRepository{}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeLive)

	_, err := uc.CreateShipment(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsCarrierError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, orders.updateCalls, "no partial write on carrier failure")
}

func TestCreateShipment_AlreadyShipped_ShortCircuits(t *testing.T) {
	shipmentID := "222"
	carrierOrderID := "111"
	client := &mockCarrierClient{}
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, userID, orderID string) (*domain.Order, error) {
			return &domain.Order{
				OrderID:         orderID,
				AWBCode:         "AWB-DEL-20260101-999999",
				ShipmentID:      &shipmentID,
				ShipmentOrderID: &carrierOrderID,
				ShipmentMode:    domain.ShipmentModeLive,
			}, nil
		},
	}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeLive)

	resp, err := uc.CreateShipment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "AWB-DEL-20260101-999999", resp.AWB)
	assert.Equal(t, "111", resp.OrderID)
	assert.Equal(t, "222", resp.ShipmentID)
	assert.Equal(t, 0, client.createCalls, "no second carrier call for a shipped order")
	assert.Equal(t, 0, orders.updateCalls, "existing AWB is never overwritten")
}

func TestCreateShipment_StoreWriteFails(t *testing.T) {
	orders := &mockOrderRepository{
		updateErr: apperrors.NewStoreError("updating order", nil),
	}
	uc := newTestCreateUseCase(carrier.NewTestClient(), orders, domain.ShipmentModeTest)

	_, err := uc.CreateShipment(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsStoreError(err)
	assert.True(t, ok)
}

func TestCreateShipment_StoreReadFails(t *testing.T) {
	client := &mockCarrierClient{}
	orders := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, userID, orderID string) (*domain.Order, error) {
			return nil, apperrors.NewStoreError("reading order", nil)
		},
	}
	uc := newTestCreateUseCase(client, orders, domain.ShipmentModeTest)

	_, err := uc.CreateShipment(context.Background(), validRequest())
	require.Error(t, err)

	_, ok := apperrors.IsStoreError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, client.createCalls)
}

func TestSplitCustomerName(t *testing.T) {
	first, last := splitCustomerName("Khan Alfiya Khatoon")
	assert.Equal(t, "Khan", first)
	assert.Equal(t, "Alfiya Khatoon", last)

	first, last = splitCustomerName("Madonna")
	assert.Equal(t, "Madonna", first)
	assert.Equal(t, "", last)
}
