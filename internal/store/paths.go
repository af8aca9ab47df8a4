package store

import "fmt"

// OrderPath addresses one order record, keyed per user and order.
func OrderPath(userID, orderID string) string {
	return fmt.Sprintf("orders/%s/%s", userID, orderID)
}

// CancelRequestPath addresses the cancellation request for one order.
func CancelRequestPath(userID, orderID string) string {
	return fmt.Sprintf("cancelRequests/%s/%s", userID, orderID)
}
