package models

// Mesa do salão. Inventário estático, gerido fora deste serviço.
type DiningTable struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Capacity int    `gorm:"not null" json:"capacity"`
}
