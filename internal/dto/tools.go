package dto

// FlightCompensationRequest is the payload for the flight tool. Dates are
// "2006-01-02" strings.
type FlightCompensationRequest struct {
	Region          string  `json:"region"`
	DepartureRegion string  `json:"departure_region"`
	ArrivalRegion   string  `json:"arrival_region"`
	DelayHours      float64 `json:"delay_hours"`
	DelayReason     string  `json:"delay_reason"`
	FlightDistance  string  `json:"flight_distance"`
	FlightDate      string  `json:"flight_date"`
}

// CoolingOffRequest is the payload for the cooling-off checker.
type CoolingOffRequest struct {
	Country          string `json:"country"`
	PurchaseLocation string `json:"purchase_location"`
	ProductType      string `json:"product_type"`
	ReceiveDate      string `json:"receive_date"`
}

// RefundTimelineRequest is the payload for the refund timeline checker.
type RefundTimelineRequest struct {
	Country      string `json:"country"`
	Category     string `json:"category"`
	PurchaseDate string `json:"purchase_date"`
	FaultDate    string `json:"fault_date,omitempty"`
}

// ResponseDeadlineRequest is the payload for the response-deadline
// checker.
type ResponseDeadlineRequest struct {
	Country       string `json:"country"`
	Industry      string `json:"industry"`
	ComplaintSent string `json:"complaint_sent"`
}

// CancelSubscriptionRequest is the payload for the subscription
// cancellation tool. Letter fields are optional; when CustomerName and
// CompanyName are present the response includes a rendered letter.
type CancelSubscriptionRequest struct {
	Country          string `json:"country"`
	SubscriptionType string `json:"subscription_type"`
	Reason           string `json:"reason"`
	SignupDate       string `json:"signup_date,omitempty"`
	CustomerName     string `json:"customer_name,omitempty"`
	CompanyName      string `json:"company_name,omitempty"`
	AccountRef       string `json:"account_ref,omitempty"`
}
