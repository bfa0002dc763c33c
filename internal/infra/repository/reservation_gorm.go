package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

// InTransaction abre uma transação SERIALIZABLE. Duas submissões
// disputando a última mesa não podem ambas enxergar o ledger livre:
// uma delas aborta com falha de serialização e vira storage_conflict.
func (r *ReservationGormRepository) InTransaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ReservationGormRepository) FindTables(
	ctx context.Context,
	minCapacity int,
) ([]models.DiningTable, error) {

	var tables []models.DiningTable
	if err := r.db.WithContext(ctx).
		Where("capacity >= ?", minCapacity).
		Order("capacity ASC, id ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}

	return tables, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *ReservationGormRepository) HasReservationForEmail(
	ctx context.Context,
	email string,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("email = ? AND reservation_date = ?", email, date).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReservationGormRepository) HasOverlap(
	ctx context.Context,
	tableID uint,
	date time.Time,
	start string,
	end string,
) (bool, error) {

	var conflicts []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"dining_table_id = ? AND reservation_date = ? AND start_time < ? AND end_time > ?",
			tableID,
			date,
			end,
			start,
		).
		Find(&conflicts).Error; err != nil {
		return false, err
	}

	return len(conflicts) > 0, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) ListReservationsForDay(
	ctx context.Context,
	date time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("DiningTable").
		Where("reservation_date = ?", date).
		Order("start_time ASC, dining_table_id ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
