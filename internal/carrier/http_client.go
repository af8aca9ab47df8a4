package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	apperrors "shipflow/internal/errors"
)

const (
	createOrderTimeout = 30 * time.Second
	trackTimeout       = 15 * time.Second
	cancelTimeout      = 15 * time.Second
)

// HTTPClient is the live-mode carrier client.
type HTTPClient struct {
	baseURL string
	tokens  *TokenManager
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL, email, password string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		tokens:  NewTokenManager(baseURL, email, password),
		client:  &http.Client{},
		logger:  logger,
	}
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, createOrderTimeout)
	defer cancel()

	body, err := c.post(ctx, "/orders/create/adhoc", req, "shipment creation failed")
	if err != nil {
		return nil, err
	}

	var orderResp CreateOrderResponse
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&orderResp); err != nil {
		return nil, apperrors.NewCarrierError("decoding carrier order response", body, err)
	}

	c.logger.Info("carrier order created",
		zap.String("carrierOrderId", orderResp.OrderID.String()),
		zap.String("shipmentId", orderResp.ShipmentID.String()),
	)
	return &orderResp, nil
}

func (c *HTTPClient) Track(ctx context.Context, awb string) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, trackTimeout)
	defer cancel()

	endpoint := c.baseURL + "/courier/track/awb/" + url.PathEscape(awb)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewCarrierError("building tracking request", nil, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewCarrierError("tracking failed", nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewCarrierError("reading tracking response", nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewCarrierError(
			fmt.Sprintf("tracking failed: carrier returned %d", resp.StatusCode), body, nil)
	}

	return json.RawMessage(body), nil
}

func (c *HTTPClient) CancelOrders(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, cancelTimeout)
	defer cancel()

	_, err := c.post(ctx, "/orders/cancel", map[string]any{"ids": ids}, "carrier cancel failed")
	return err
}

// post sends an authenticated JSON POST and returns the 2xx response body.
func (c *HTTPClient) post(ctx context.Context, path string, payload any, failMsg string) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewCarrierError("encoding carrier payload", nil, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewCarrierError("building carrier request", nil, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewCarrierError(failMsg, nil, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewCarrierError("reading carrier response", nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewCarrierError(
			fmt.Sprintf("%s: carrier returned %d", failMsg, resp.StatusCode), respBody, nil)
	}

	return respBody, nil
}
