package dto

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format of slot times. Values carry no zone and
// are read as UTC.
const DateTimeLayout = "2006-01-02T15:04"

type CreateCourtRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateScheduleRequest struct {
	CourtID       string `json:"tennis_court_id" binding:"required,uuid"`
	StartDateTime string `json:"start_date_time"`
}

type RangeRequest struct {
	StartDateTime string `json:"start_date_time" binding:"required"`
	EndDateTime   string `json:"end_date_time"   binding:"required"`
}

type GuestRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateReservationRequest struct {
	GuestID    string `json:"guest_id"    binding:"required,uuid"`
	ScheduleID string `json:"schedule_id" binding:"required,uuid"`
}

type RescheduleRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required,uuid"`
}

// ParseDateTime reads a slot time. An empty value yields the zero time.
func ParseDateTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{DateTimeLayout, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date time %q, expected %s", v, DateTimeLayout)
}

// Range parses both bounds of the request.
func (r RangeRequest) Range() (start, end time.Time, err error) {
	if start, err = ParseDateTime(r.StartDateTime); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = ParseDateTime(r.EndDateTime); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
