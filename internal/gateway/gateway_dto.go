package gateway

// CreateIntentRequest carries the amount in major currency units; the
// handler converts to the smallest unit before calling the provider.
type CreateIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

type CreateIntentResponse struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"clientSecret"`
}
