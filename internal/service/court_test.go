package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/clock"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourtService_Create(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	svc := NewCourtService(repo, mocks.NewMockScheduleRepo(t), clock.NewMock(testNow), newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	court, err := svc.Create(context.Background(), domain.CreateCourtInput{Name: "Center Court"})

	require.NoError(t, err)
	assert.NotEmpty(t, court.ID)
	assert.Equal(t, "Center Court", court.Name)
}

func TestCourtService_Create_EmptyName(t *testing.T) {
	svc := NewCourtService(mocks.NewMockCourtRepo(t), mocks.NewMockScheduleRepo(t), clock.NewMock(testNow), newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateCourtInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourtService_GetDetails(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	scheduleRepo := mocks.NewMockScheduleRepo(t)
	svc := NewCourtService(repo, scheduleRepo, clock.NewMock(testNow), newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Court{ID: "c1", Name: "Center"}, nil)
	scheduleRepo.EXPECT().ListByCourt(mock.Anything, "c1").Return([]*domain.Schedule{
		slotAt("s1", testNow.Add(time.Hour)),
		slotAt("s2", testNow.Add(2*time.Hour)),
	}, nil)

	details, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "Center", details.Court.Name)
	require.Len(t, details.Schedules, 2)
	assert.Equal(t, "s1", details.Schedules[0].ID)
}

func TestCourtService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockCourtRepo(t)
	svc := NewCourtService(repo, mocks.NewMockScheduleRepo(t), clock.NewMock(testNow), newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCourtNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
