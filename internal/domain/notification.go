package domain

// InquiryNotification is the payload for the email that alerts a band
// owner about a new quote request.
type InquiryNotification struct {
	BandEmail     string `json:"bandEmail"`
	BandName      string `json:"bandName"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	EventType     string `json:"eventType"`
	EventDate     string `json:"eventDate"`
	EventLocation string `json:"eventLocation"`
	Message       string `json:"message"`
}

// ClientConfirmation is the payload for the email that confirms to a
// client that their quote request was delivered.
type ClientConfirmation struct {
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	BandName      string `json:"bandName"`
	EventType     string `json:"eventType"`
	EventDate     string `json:"eventDate"`
	EventLocation string `json:"eventLocation"`
}
