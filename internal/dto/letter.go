package dto

// GenerateLetterRequest carries the case facts forwarded to the external
// letter-generation service.
type GenerateLetterRequest struct {
	CustomerName   string `json:"customer_name"`
	CompanyName    string `json:"company_name"`
	Jurisdiction   string `json:"jurisdiction"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	DesiredOutcome string `json:"desired_outcome,omitempty"`
	OrderRef       string `json:"order_ref,omitempty"`
	AmountPaid     string `json:"amount_paid,omitempty"`
}

// GenerateLetterResponse is the drafted letter returned to the client.
type GenerateLetterResponse struct {
	Letter string `json:"letter"`
}
