package inquiry

import "nilinki/internal/domain"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Stats is the dashboard summary block: one count per status plus a total.
type Stats struct {
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Declined  int64 `json:"declined"`
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}

func statsFromCounts(counts map[domain.InquiryStatus]int64) Stats {
	s := Stats{
		Pending:   counts[domain.InquiryPending],
		Accepted:  counts[domain.InquiryAccepted],
		Declined:  counts[domain.InquiryDeclined],
		Completed: counts[domain.InquiryCompleted],
	}
	s.Total = s.Pending + s.Accepted + s.Declined + s.Completed
	return s
}
