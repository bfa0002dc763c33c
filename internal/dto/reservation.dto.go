package dto

import (
	"time"

	"github.com/ruzaikr/table-booking/internal/models"
)

type ReservationDTO struct {
	ID               uint      `json:"id"`
	TableID          uint      `json:"table_id"`
	TableName        string    `json:"table_name"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Notes            string    `json:"notes,omitempty"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReservationListDTO struct {
	ID        uint   `json:"id"`
	TableName string `json:"table_name"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func FromReservation(r *models.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:               r.ID,
		TableID:          r.DiningTableID,
		TableName:        r.DiningTable.Name,
		Name:             r.Name,
		Email:            r.Email,
		Date:             r.ReservationDate.Format("2006-01-02"),
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Notes:            r.Notes,
		ConfirmationCode: r.ConfirmationCode,
		CreatedAt:        r.CreatedAt,
	}
}
