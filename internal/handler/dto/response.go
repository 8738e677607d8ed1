package dto

import (
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type CourtResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type CourtDetailsResponse struct {
	Court     CourtResponse      `json:"tennis_court"`
	Schedules []ScheduleResponse `json:"schedules"`
}

type ScheduleResponse struct {
	ID            string `json:"id"`
	CourtID       string `json:"tennis_court_id"`
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
	CreatedAt     string `json:"created_at"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ReservationResponse renders money as decimal strings.
type ReservationResponse struct {
	ID                    string  `json:"id"`
	GuestID               string  `json:"guest_id"`
	ScheduleID            string  `json:"schedule_id"`
	Status                string  `json:"reservation_status"`
	Value                 string  `json:"value"`
	RefundValue           *string `json:"refund_value,omitempty"`
	PreviousReservationID *string `json:"previous_reservation_id,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCourtResponse(c *domain.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCourtDetailsResponse(d *domain.CourtDetails) CourtDetailsResponse {
	schedules := make([]ScheduleResponse, 0, len(d.Schedules))
	for _, s := range d.Schedules {
		schedules = append(schedules, ToScheduleResponse(&s))
	}

	return CourtDetailsResponse{
		Court:     ToCourtResponse(&d.Court),
		Schedules: schedules,
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		CourtID:       s.CourtID,
		StartDateTime: s.StartDateTime.Format(DateTimeLayout),
		EndDateTime:   s.EndDateTime.Format(DateTimeLayout),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func ToScheduleResponses(schedules []*domain.Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, ToScheduleResponse(s))
	}
	return resp
}

func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
		UpdatedAt: g.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:                    r.ID,
		GuestID:               r.GuestID,
		ScheduleID:            r.ScheduleID,
		Status:                string(r.Status),
		Value:                 r.Value.StringFixed(2),
		PreviousReservationID: r.PreviousReservationID,
		CreatedAt:             r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             r.UpdatedAt.Format(time.RFC3339),
	}
	if r.RefundValue.Valid {
		refund := r.RefundValue.Decimal.StringFixed(2)
		resp.RefundValue = &refund
	}
	return resp
}

func ToReservationResponses(reservations []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}
