package reservation

import (
	"context"
	"time"

	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/models"
	"github.com/ruzaikr/table-booking/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	policy domain.Policy

	now func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	policy domain.Policy,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		policy: policy,
		now: func() time.Time {
			return timezone.NowIn(tz)
		},
	}
}

// Execute devolve os horários que ainda têm ao menos uma mesa livre
// para o grupo. Dias fechados ou fora da janela voltam vazios, não em
// erro: o formulário só precisa saber que não há nada para oferecer.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if in.Guests <= 0 {
		return []domain.TimeSlot{}, nil
	}

	today := dateOnly(uc.now())
	if err := uc.policy.ValidateDate(in.Date, today); err != nil {
		return []domain.TimeSlot{}, nil
	}

	tables, err := uc.repo.FindTables(ctx, in.Guests)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return []domain.TimeSlot{}, nil
	}

	reservations, err := uc.repo.ListReservationsForDay(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	booked := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		booked[r.DiningTableID] = append(booked[r.DiningTableID], r)
	}

	slots := make([]domain.TimeSlot, 0, len(uc.policy.Pairs))
	for _, pair := range uc.policy.Pairs {
		for _, t := range tables {
			if !tableBusy(booked[t.ID], pair.Start, pair.End) {
				slots = append(slots, domain.TimeSlot{Start: pair.Start, End: pair.End})
				break
			}
		}
	}

	return slots, nil
}

func tableBusy(reservations []models.Reservation, start, end string) bool {
	for _, r := range reservations {
		if r.StartTime < end && r.EndTime > start {
			return true
		}
	}
	return false
}
