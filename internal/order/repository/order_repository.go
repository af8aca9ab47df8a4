package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"shipflow/internal/domain"
	"shipflow/internal/errors"
	"shipflow/internal/store"
)

// PathStore is the slice of the document store the repositories need.
type PathStore interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Set(ctx context.Context, path string, value any) error
	Update(ctx context.Context, path string, fields map[string]any) error
}

type StoreOrderRepository struct {
	store PathStore
}

func NewStoreOrderRepository(store PathStore) *StoreOrderRepository {
	return &StoreOrderRepository{store: store}
}

func (r *StoreOrderRepository) FindByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	raw, err := r.store.Get(ctx, store.OrderPath(userID, orderID))
	if err != nil {
		return nil, errors.NewStoreError("reading order", err)
	}
	if raw == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found for user %s", orderID, userID))
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, errors.NewStoreError("decoding order record", err)
	}

	return &order, nil
}

// UpdateFields merges lifecycle fields into the order record. The store
// creates the record when it does not exist yet, matching the remote
// store's update-creates semantics.
func (r *StoreOrderRepository) UpdateFields(ctx context.Context, userID, orderID string, fields map[string]any) error {
	if err := r.store.Update(ctx, store.OrderPath(userID, orderID), fields); err != nil {
		return errors.NewStoreError("updating order", err)
	}
	return nil
}

type StoreCancelRequestRepository struct {
	store PathStore
}

func NewStoreCancelRequestRepository(store PathStore) *StoreCancelRequestRepository {
	return &StoreCancelRequestRepository{store: store}
}

// Save overwrites any previous cancellation request for the same order.
func (r *StoreCancelRequestRepository) Save(ctx context.Context, userID, orderID string, req domain.CancelRequest) error {
	if err := r.store.Set(ctx, store.CancelRequestPath(userID, orderID), req); err != nil {
		return errors.NewStoreError("saving cancel request", err)
	}
	return nil
}
