package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"shipflow/internal/carrier"
	"shipflow/internal/domain"
	"shipflow/internal/dto"
	apperrors "shipflow/internal/errors"
)

// Fixed physical defaults applied when the order carries no package
// dimensions of its own.
const (
	defaultPackageSide   = 10.0
	defaultPackageWeight = 0.5
)

const (
	defaultCountry       = "India"
	defaultEmail         = "demo@mail.com"
	defaultPhone         = "9999999999"
	defaultPaymentMethod = "Prepaid"
	testShipmentID       = "test-shipment"
)

type CarrierClient interface {
	CreateOrder(ctx context.Context, req carrier.CreateOrderRequest) (*carrier.CreateOrderResponse, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateFields(ctx context.Context, userID, orderID string, fields map[string]any) error
}

type CreateShipmentUseCase struct {
	carrier        CarrierClient
	orders         OrderRepository
	mode           string
	pickupLocation string
	logger         *zap.Logger
}

func NewCreateShipmentUseCase(
	carrierClient CarrierClient,
	orders OrderRepository,
	mode string,
	pickupLocation string,
	logger *zap.Logger,
) *CreateShipmentUseCase {
	return &CreateShipmentUseCase{
		carrier:        carrierClient,
		orders:         orders,
		mode:           mode,
		pickupLocation: pickupLocation,
		logger:         logger,
	}
}

// CreateShipment runs the full shipment pipeline: validate, normalize
// items, hand the order to the carrier, resolve a tracking code and
// write the shipment state back onto the order record. Nothing is
// written until a tracking code exists.
func (uc *CreateShipmentUseCase) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error) {
	if err := validateCreateShipment(req); err != nil {
		return nil, err
	}

	userID := req.UserID
	orderID := req.OrderID.String()

	uc.logger.Info("create shipment started",
		zap.String("userId", userID),
		zap.String("orderId", orderID),
		zap.Int("itemCount", len(req.Items)),
	)

	// An order that already carries a tracking code was shipped before;
	// short-circuit with the stored result instead of re-shipping.
	existing, err := uc.orders.FindByID(ctx, userID, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return nil, err
		}
	}
	if existing != nil && existing.AWBCode != "" {
		uc.logger.Info("order already shipped, returning existing shipment",
			zap.String("orderId", orderID),
			zap.String("awb", existing.AWBCode),
		)
		return existingShipmentResponse(existing, orderID), nil
	}

	items := domain.BuildOrderItems(req.Items, domain.ItemDefaults{Price: req.Price})
	subTotal := domain.SubTotal(items)

	resp, err := uc.carrier.CreateOrder(ctx, uc.buildCarrierOrder(req, orderID, items, subTotal))
	if err != nil {
		uc.logger.Error("carrier order creation failed",
			zap.String("orderId", orderID),
			zap.Error(err),
		)
		return nil, err
	}

	awb := resp.AWB()
	if awb == "" {
		awb = GenerateFallbackAWB()
	}

	fields := map[string]any{
		"shipmentId":      numberOrNil(resp.ShipmentID),
		"shipmentOrderId": numberOrNil(resp.OrderID),
		"awbCode":         awb,
		"shipmentMode":    uc.mode,
		"shippedAt":       time.Now().UTC().Format(time.RFC3339),

		// Shipping snapshot: admin tooling reads these off the order
		// record next to the shipment metadata.
		"customerName": req.CustomerName,
		"address":      req.Address,
		"city":         req.City,
		"state":        req.State,
		"pincode":      req.Pincode.String(),
		"phone":        req.Phone.String(),
		"email":        req.Email,
	}

	if err := uc.orders.UpdateFields(ctx, userID, orderID, fields); err != nil {
		return nil, err
	}

	uc.logger.Info("shipment created",
		zap.String("orderId", orderID),
		zap.String("awb", awb),
		zap.String("mode", uc.mode),
	)

	return &dto.CreateShipmentResponse{
		Success:    true,
		Mode:       uc.mode,
		AWB:        awb,
		OrderID:    numberOr(resp.OrderID, orderID),
		ShipmentID: numberOr(resp.ShipmentID, testShipmentID),
	}, nil
}

func validateCreateShipment(req dto.CreateShipmentRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"orderId", req.OrderID.String()},
		{"customer_name", req.CustomerName},
		{"address", req.Address},
		{"city", req.City},
		{"pincode", req.Pincode.String()},
		{"userId", req.UserID},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("Missing fields", details...)
	}

	return nil
}

func (uc *CreateShipmentUseCase) buildCarrierOrder(req dto.CreateShipmentRequest, orderID string, items []domain.OrderItem, subTotal float64) carrier.CreateOrderRequest {
	firstName, lastName := splitCustomerName(req.CustomerName)

	orderItems := make([]carrier.Item, len(items))
	for i, it := range items {
		orderItems[i] = carrier.Item{
			Name:         it.Name,
			SKU:          it.SKU,
			Units:        it.Units,
			SellingPrice: it.SellingPrice,
		}
	}

	return carrier.CreateOrderRequest{
		OrderID:        orderID,
		OrderDate:      time.Now().UTC().Format(time.RFC3339),
		PickupLocation: uc.pickupLocation,

		BillingCustomerName: firstName,
		BillingLastName:     lastName,
		BillingAddress:      req.Address,
		BillingCity:         req.City,
		BillingPincode:      req.Pincode.String(),
		BillingState:        req.State,
		BillingCountry:      defaultCountry,
		BillingEmail:        stringOr(req.Email, defaultEmail),
		BillingPhone:        stringOr(req.Phone.String(), defaultPhone),

		ShippingIsBilling: true,
		PaymentMethod:     stringOr(req.PaymentMethod, defaultPaymentMethod),

		SubTotal:   subTotal,
		OrderItems: orderItems,

		Length:  floatOr(req.Length, defaultPackageSide),
		Breadth: floatOr(req.Breadth, defaultPackageSide),
		Height:  floatOr(req.Height, defaultPackageSide),
		Weight:  floatOr(req.Weight, defaultPackageWeight),
	}
}

func existingShipmentResponse(order *domain.Order, orderID string) *dto.CreateShipmentResponse {
	resp := &dto.CreateShipmentResponse{
		Success:    true,
		Mode:       order.ShipmentMode,
		AWB:        order.AWBCode,
		OrderID:    orderID,
		ShipmentID: testShipmentID,
	}
	if order.ShipmentOrderID != nil {
		resp.OrderID = *order.ShipmentOrderID
	}
	if order.ShipmentID != nil {
		resp.ShipmentID = *order.ShipmentID
	}
	return resp
}

// splitCustomerName splits on the first space: first word becomes the
// carrier's first name, the remainder the last name.
func splitCustomerName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// numberOrNil maps an absent carrier identifier to an explicit null in
// the order record.
func numberOrNil(n json.Number) any {
	if n.String() == "" {
		return nil
	}
	return n.String()
}

func numberOr(n json.Number, fallback string) string {
	if n.String() == "" {
		return fallback
	}
	return n.String()
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func floatOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
