package payment

type RequestPaymentRequest struct {
	Email         string     `json:"email" binding:"required,email"`
	Month         MonthValue `json:"month" binding:"required"`
	Year          int        `json:"year" binding:"required,min=1970"`
	Amount        int64      `json:"amount" binding:"required"`
	TransactionID string     `json:"transactionId" binding:"required"`
}

type ApprovePaymentRequest struct {
	GatewayRef string `json:"gatewayRef"`
}

type ListPaymentsQuery struct {
	Page  int `form:"page" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	Amount        int64   `json:"amount"`
	TransactionID string  `json:"transactionId"`
	Paid          bool    `json:"paid"`
	RequestedAt   string  `json:"requestedAt"`
	PaidAt        *string `json:"paidAt"`
}
