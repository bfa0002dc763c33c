package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DiningTableID uint        `gorm:"not null" json:"dining_table_id"`
	DiningTable   DiningTable `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dining_table"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex:uniq_email_reservation_date" json:"email"`
	Notes string `gorm:"size:255" json:"notes"`

	ReservationDate time.Time `gorm:"type:date;not null;uniqueIndex:uniq_email_reservation_date" json:"reservation_date"`

	// Horários como HH:MM; a comparação lexicográfica preserva a ordem temporal.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	ConfirmationCode string `gorm:"size:36;uniqueIndex" json:"confirmation_code"`

	CreatedAt time.Time `json:"created_at"`
}
