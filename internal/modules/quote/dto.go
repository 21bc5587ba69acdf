package quote

// QuoteRequest is the raw quote-submission payload. Fields arrive untrusted;
// Validate is the authoritative check regardless of what the client UI
// already verified.
type QuoteRequest struct {
	BandID    string `json:"bandId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	EventType string `json:"eventType"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Details   string `json:"details"`
}

type SubmitResult struct {
	BandName string
}
