package usecase

import (
	"time"

	"github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
)

// Stats are the dashboard numbers for one mailbox. They carry no hidden
// state; every refresh recomputes them from the full record set.
type Stats struct {
	Total                  int     `json:"total"`
	Pending                int     `json:"pending"`
	Replied                int     `json:"replied"`
	VipPending             int     `json:"vip_pending"`
	AvgResponseTimeMinutes float64 `json:"avg_response_time_minutes"`
	OverSLACount           int     `json:"over_sla_count"`
}

// Aggregate computes dashboard stats over a mailbox's records as of now.
func Aggregate(records []*domain.EmailRecord, now time.Time) Stats {
	stats := Stats{Total: len(records)}

	var repliedSeconds int64
	var repliedWithTime int
	for _, r := range records {
		switch r.Status {
		case domain.StatusPending:
			stats.Pending++
			if r.IsVip {
				stats.VipPending++
			}
			elapsedMinutes := now.Sub(r.ReceivedAt).Minutes()
			if elapsedMinutes > float64(r.SLAMinutes) {
				stats.OverSLACount++
			}
		case domain.StatusReplied:
			stats.Replied++
			if r.ResponseTimeSeconds != nil {
				repliedSeconds += *r.ResponseTimeSeconds
				repliedWithTime++
			}
		}
	}

	if repliedWithTime > 0 {
		stats.AvgResponseTimeMinutes = float64(repliedSeconds) / float64(repliedWithTime) / 60
	}
	return stats
}
