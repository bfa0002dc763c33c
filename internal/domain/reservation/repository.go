package reservation

import (
	"context"
	"time"

	"github.com/ruzaikr/table-booking/internal/models"
)

type Repository interface {
	// InTransaction executa fn dentro de uma transação serializável.
	// O Repository recebido por fn opera sobre essa transação.
	InTransaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Catalog (read-only) --------
	FindTables(
		ctx context.Context,
		minCapacity int,
	) ([]models.DiningTable, error)

	// -------- Ledger --------
	HasReservationForEmail(
		ctx context.Context,
		email string,
		date time.Time,
	) (bool, error)

	HasOverlap(
		ctx context.Context,
		tableID uint,
		date time.Time,
		start string,
		end string,
	) (bool, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	ListReservationsForDay(
		ctx context.Context,
		date time.Time,
	) ([]models.Reservation, error)
}
