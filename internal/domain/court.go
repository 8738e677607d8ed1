package domain

import "time"

type Court struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CourtDetails struct {
	Court     Court      `json:"court"`
	Schedules []Schedule `json:"schedules"`
}

type CreateCourtInput struct {
	Name string
}
