package review

type CreateRequest struct {
	BandID    string `json:"bandId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Content   string `json:"content" binding:"required"`
	EventType string `json:"eventType"`
}

// Eligibility is what the profile page needs to decide whether to show the
// review form. All three fields are false for anonymous visitors.
type Eligibility struct {
	HasCompletedBooking bool `json:"has_completed_booking"`
	HasReviewed         bool `json:"has_reviewed"`
	CanReview           bool `json:"can_review"`
}
