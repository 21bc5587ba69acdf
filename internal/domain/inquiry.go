package domain

import "time"

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryAccepted  InquiryStatus = "accepted"
	InquiryDeclined  InquiryStatus = "declined"
	InquiryCompleted InquiryStatus = "completed"
)

// ValidInquiryStatus reports whether s is one of the four known states.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryPending, InquiryAccepted, InquiryDeclined, InquiryCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an inquiry may move from one status to
// another. pending goes to accepted or declined; accepted goes to completed;
// declined and completed are terminal.
func CanTransition(from, to InquiryStatus) bool {
	switch from {
	case InquiryPending:
		return to == InquiryAccepted || to == InquiryDeclined
	case InquiryAccepted:
		return to == InquiryCompleted
	}
	return false
}

// BookingInquiry is one client's request to book one band for one event.
// Contact details travel inside Message because the quote flow has no
// dedicated columns for them.
type BookingInquiry struct {
	ID            string        `json:"id"`
	BandID        string        `json:"band_id"`
	ClientID      string        `json:"client_id"`
	EventDate     string        `json:"event_date"`
	EventType     string        `json:"event_type"`
	EventLocation string        `json:"event_location,omitempty"`
	GuestCount    *int          `json:"guest_count,omitempty"`
	Message       string        `json:"message,omitempty"`
	Status        InquiryStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
