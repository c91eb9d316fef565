package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type SubscriptionStatusResponse struct {
	Active    bool   `json:"active"`
	ProductID string `json:"product_id,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
