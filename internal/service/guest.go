package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type GuestService struct {
	repo   ports.GuestRepo
	clock  ports.Clock
	logger logger.Logger
}

func NewGuestService(repo ports.GuestRepo, clock ports.Clock, logger logger.Logger) *GuestService {
	return &GuestService{repo: repo, clock: clock, logger: logger}
}

func (s *GuestService) Create(ctx context.Context, input domain.GuestInput) (*domain.Guest, error) {
	name, err := guestName(input)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	guest := &domain.Guest{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.repo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.logger.Info("guest created", logger.String("guest_id", guest.ID))

	return guest, nil
}

func (s *GuestService) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GuestService) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *GuestService) List(ctx context.Context) ([]*domain.Guest, error) {
	return s.repo.List(ctx)
}

func (s *GuestService) Update(ctx context.Context, id string, input domain.GuestInput) (*domain.Guest, error) {
	name, err := guestName(input)
	if err != nil {
		return nil, err
	}

	guest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	guest.Name = name
	guest.UpdatedAt = s.clock.Now()
	if err = s.repo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("update guest: %w", err)
	}

	s.logger.Info("guest updated", logger.String("guest_id", guest.ID))

	return guest, nil
}

func (s *GuestService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get guest: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}

	s.logger.Info("guest deleted", logger.String("guest_id", id))

	return nil
}

func guestName(input domain.GuestInput) (string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return name, nil
}
