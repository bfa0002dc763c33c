package reservation

import (
	"context"
	"time"

	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/dto"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListReservationsForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:        r.ID,
			TableName: r.DiningTable.Name,
			Name:      r.Name,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	return out, nil
}
