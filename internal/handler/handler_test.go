package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/CourtBooker/internal/handler/mocks"
	"github.com/stpnv0/CourtBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	courts       *hmocks.MockCourtSvc
	schedules    *hmocks.MockScheduleSvc
	guests       *hmocks.MockGuestSvc
	reservations *hmocks.MockReservationSvc
	handler      http.Handler
}

func setupRouter(t *testing.T) testServer {
	t.Helper()
	s := testServer{
		courts:       hmocks.NewMockCourtSvc(t),
		schedules:    hmocks.NewMockScheduleSvc(t),
		guests:       hmocks.NewMockGuestSvc(t),
		reservations: hmocks.NewMockReservationSvc(t),
	}

	h := NewHandler(s.courts, s.schedules, s.guests, s.reservations)
	s.handler = router.InitRouter("test", h)

	return s
}

func (s testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	s.handler.ServeHTTP(w, req)
	return w
}

var slotStart = time.Date(2030, 3, 1, 18, 0, 0, 0, time.UTC)

// --- Courts ---

func TestHandler_CreateCourt_Success(t *testing.T) {
	s := setupRouter(t)

	court := &domain.Court{ID: uuid.New().String(), Name: "Center", CreatedAt: time.Now()}
	s.courts.EXPECT().Create(mock.Anything, domain.CreateCourtInput{Name: "Center"}).Return(court, nil)

	w := s.do(http.MethodPost, "/api/courts", dto.CreateCourtRequest{Name: "Center"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CourtResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, court.ID, resp.ID)
	assert.Equal(t, "Center", resp.Name)
}

func TestHandler_CreateCourt_BadRequest(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodPost, "/api/courts", []byte(`{"name":""}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCourtSchedules(t *testing.T) {
	s := setupRouter(t)

	courtID := uuid.New().String()
	s.schedules.EXPECT().ListByCourt(mock.Anything, courtID).Return([]*domain.Schedule{
		{ID: uuid.New().String(), CourtID: courtID, StartDateTime: slotStart, EndDateTime: slotStart.Add(time.Hour)},
		{ID: uuid.New().String(), CourtID: courtID, StartDateTime: slotStart.Add(time.Hour), EndDateTime: slotStart.Add(2 * time.Hour)},
	}, nil)

	w := s.do(http.MethodGet, "/api/courts/"+courtID+"/schedules", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2030-03-01T18:00", resp[0].StartDateTime)
	assert.Equal(t, "2030-03-01T20:00", resp[1].EndDateTime)
}

func TestHandler_GetCourtSchedules_UnknownCourt(t *testing.T) {
	s := setupRouter(t)

	courtID := uuid.New().String()
	s.schedules.EXPECT().ListByCourt(mock.Anything, courtID).Return(nil, domain.ErrCourtNotFound)

	w := s.do(http.MethodGet, "/api/courts/"+courtID+"/schedules", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCourtDetails(t *testing.T) {
	s := setupRouter(t)

	courtID := uuid.New().String()
	details := &domain.CourtDetails{
		Court: domain.Court{ID: courtID, Name: "Center"},
		Schedules: []domain.Schedule{
			{ID: uuid.New().String(), CourtID: courtID, StartDateTime: slotStart, EndDateTime: slotStart.Add(time.Hour)},
		},
	}
	s.courts.EXPECT().GetDetails(mock.Anything, courtID).Return(details, nil)

	w := s.do(http.MethodGet, "/api/courts/"+courtID+"/details", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CourtDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Center", resp.Court.Name)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "2030-03-01T19:00", resp.Schedules[0].EndDateTime)
}

func TestHandler_GetCourt_InvalidID(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodGet, "/api/courts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCourt_NotFound(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	s.courts.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrCourtNotFound)

	w := s.do(http.MethodGet, "/api/courts/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Schedules ---

func TestHandler_AddSchedule_Success(t *testing.T) {
	s := setupRouter(t)

	courtID := uuid.New().String()
	schedule := &domain.Schedule{
		ID:            uuid.New().String(),
		CourtID:       courtID,
		StartDateTime: slotStart,
		EndDateTime:   slotStart.Add(time.Hour),
	}
	s.schedules.EXPECT().AddSlot(mock.Anything, domain.CreateScheduleInput{
		CourtID:       courtID,
		StartDateTime: slotStart,
	}).Return(schedule, nil)

	w := s.do(http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		CourtID:       courtID,
		StartDateTime: "2030-03-01T18:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schedule.ID, resp.ID)
}

func TestHandler_AddSchedule_MissingStart(t *testing.T) {
	s := setupRouter(t)

	courtID := uuid.New().String()
	s.schedules.EXPECT().AddSlot(mock.Anything, domain.CreateScheduleInput{CourtID: courtID}).
		Return(nil, domain.ErrStartMissing)

	w := s.do(http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{CourtID: courtID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrStartMissing.Error(), resp.Error)
}

func TestHandler_AddSchedule_InvalidDate(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		CourtID:       uuid.New().String(),
		StartDateTime: "tomorrow",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddSchedule_AlreadyScheduled(t *testing.T) {
	s := setupRouter(t)

	s.schedules.EXPECT().AddSlot(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotAlreadyScheduled)

	w := s.do(http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		CourtID:       uuid.New().String(),
		StartDateTime: "2030-03-01T18:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_FilterAvailableSchedules(t *testing.T) {
	s := setupRouter(t)

	end := slotStart.Add(6 * time.Hour)
	s.schedules.EXPECT().ListAvailableInRange(mock.Anything, slotStart, end).Return([]*domain.Schedule{
		{ID: uuid.New().String(), StartDateTime: slotStart, EndDateTime: slotStart.Add(time.Hour)},
	}, nil)

	w := s.do(http.MethodPost, "/api/schedules/filter/available", dto.RangeRequest{
		StartDateTime: "2030-03-01T18:00",
		EndDateTime:   "2030-03-02T00:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_FilterSchedules_InvalidRange(t *testing.T) {
	s := setupRouter(t)

	s.schedules.EXPECT().ListInRange(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := s.do(http.MethodPost, "/api/schedules/filter", dto.RangeRequest{
		StartDateTime: "2030-03-02T00:00",
		EndDateTime:   "2030-03-01T00:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Guests ---

func TestHandler_CreateGuest_NameTaken(t *testing.T) {
	s := setupRouter(t)

	s.guests.EXPECT().Create(mock.Anything, domain.GuestInput{Name: "Roger"}).Return(nil, domain.ErrGuestNameTaken)

	w := s.do(http.MethodPost, "/api/guests", dto.GuestRequest{Name: "Roger"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SearchGuest(t *testing.T) {
	s := setupRouter(t)

	guest := &domain.Guest{ID: uuid.New().String(), Name: "Roger"}
	s.guests.EXPECT().GetByName(mock.Anything, "Roger").Return(guest, nil)

	w := s.do(http.MethodGet, "/api/guests/search?name=Roger", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.GuestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, guest.ID, resp.ID)
}

func TestHandler_SearchGuest_MissingName(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodGet, "/api/guests/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateGuest(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	s.guests.EXPECT().Update(mock.Anything, id, domain.GuestInput{Name: "Rafa"}).
		Return(&domain.Guest{ID: id, Name: "Rafa"}, nil)

	w := s.do(http.MethodPut, "/api/guests/"+id, dto.GuestRequest{Name: "Rafa"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteGuest(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	s.guests.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := s.do(http.MethodDelete, "/api/guests/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteGuest_Referenced(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	s.guests.EXPECT().Delete(mock.Anything, id).Return(domain.ErrGuestHasReservations)

	w := s.do(http.MethodDelete, "/api/guests/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Reservations ---

func TestHandler_BookReservation_Success(t *testing.T) {
	s := setupRouter(t)

	guestID, scheduleID := uuid.New().String(), uuid.New().String()
	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    guestID,
		ScheduleID: scheduleID,
		Status:     domain.ReservationStatusReadyToPlay,
		Value:      domain.ReservationFee,
	}
	s.reservations.EXPECT().Book(mock.Anything, guestID, scheduleID).Return(reservation, nil)

	w := s.do(http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		GuestID:    guestID,
		ScheduleID: scheduleID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "READY_TO_PLAY", resp.Status)
	assert.Equal(t, "10.00", resp.Value)
	assert.Nil(t, resp.RefundValue)
}

func TestHandler_BookReservation_InvalidBody(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodPost, "/api/reservations", []byte(`{"guest_id":"x"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookReservation_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "slot booked", err: domain.ErrSlotAlreadyBooked, code: http.StatusConflict},
		{name: "past slot", err: domain.ErrSlotNotInFuture, code: http.StatusBadRequest},
		{name: "unknown guest", err: domain.ErrGuestNotFound, code: http.StatusNotFound},
		{name: "unknown schedule", err: domain.ErrScheduleNotFound, code: http.StatusNotFound},
		{name: "store failure", err: errors.New("db down"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupRouter(t)

			s.reservations.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := s.do(http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
				GuestID:    uuid.New().String(),
				ScheduleID: uuid.New().String(),
			})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	cancelled := &domain.Reservation{
		ID:          id,
		Status:      domain.ReservationStatusCancelled,
		Value:       decimal.RequireFromString("2.5"),
		RefundValue: decimal.NewNullDecimal(decimal.RequireFromString("7.5")),
	}
	s.reservations.EXPECT().Cancel(mock.Anything, id).Return(cancelled, nil)

	w := s.do(http.MethodDelete, "/api/reservations/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, "2.50", resp.Value)
	require.NotNil(t, resp.RefundValue)
	assert.Equal(t, "7.50", *resp.RefundValue)
}

func TestHandler_CancelReservation_NotReady(t *testing.T) {
	s := setupRouter(t)

	id := uuid.New().String()
	s.reservations.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrReservationNotReady)

	w := s.do(http.MethodDelete, "/api/reservations/"+id, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RescheduleReservation(t *testing.T) {
	s := setupRouter(t)

	id, scheduleID := uuid.New().String(), uuid.New().String()
	next := &domain.Reservation{
		ID:                    uuid.New().String(),
		ScheduleID:            scheduleID,
		Status:                domain.ReservationStatusReadyToPlay,
		Value:                 domain.ReservationFee,
		PreviousReservationID: &id,
	}
	s.reservations.EXPECT().Reschedule(mock.Anything, id, scheduleID).Return(next, nil)

	w := s.do(http.MethodPut, "/api/reservations/"+id+"/reschedule", dto.RescheduleRequest{ScheduleID: scheduleID})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.PreviousReservationID)
	assert.Equal(t, id, *resp.PreviousReservationID)
	assert.Equal(t, scheduleID, resp.ScheduleID)
}

func TestHandler_RescheduleReservation_SameSlot(t *testing.T) {
	s := setupRouter(t)

	id, scheduleID := uuid.New().String(), uuid.New().String()
	s.reservations.EXPECT().Reschedule(mock.Anything, id, scheduleID).Return(nil, domain.ErrSameSlot)

	w := s.do(http.MethodPut, "/api/reservations/"+id+"/reschedule", dto.RescheduleRequest{ScheduleID: scheduleID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FilterReservations(t *testing.T) {
	s := setupRouter(t)

	end := slotStart.Add(24 * time.Hour)
	s.reservations.EXPECT().ListInRange(mock.Anything, slotStart, end).Return(nil, nil)

	w := s.do(http.MethodPost, "/api/reservations/filter", dto.RangeRequest{
		StartDateTime: "2030-03-01T18:00",
		EndDateTime:   "2030-03-02T18:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Health(t *testing.T) {
	s := setupRouter(t)

	w := s.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
