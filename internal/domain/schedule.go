package domain

import "time"

// SlotDuration is the fixed length of every schedule slot.
const SlotDuration = time.Hour

type Schedule struct {
	ID            string    `json:"id"`
	CourtID       string    `json:"court_id"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateScheduleInput struct {
	CourtID       string
	StartDateTime time.Time
}

// Within reports whether the slot lies entirely inside [start, end].
func (s *Schedule) Within(start, end time.Time) bool {
	return !s.StartDateTime.Before(start) && !s.EndDateTime.After(end)
}
