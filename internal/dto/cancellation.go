package dto

type RequestCancelRequest struct {
	UserID  string     `json:"userId"`
	OrderID FlexString `json:"orderId"`
	Reason  string     `json:"reason"`
}

type ApproveCancelRequest struct {
	UserID  string     `json:"userId"`
	OrderID FlexString `json:"orderId"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
