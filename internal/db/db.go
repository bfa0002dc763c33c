package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ruzaikr/table-booking/internal/config"
	reservation "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.DiningTable{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	applyReservationConstraints(db, cfg.Policy)
	seedDiningTables(db)

	return db
}

type checkConstraint struct {
	Name  string
	Check string
}

// As validações da engine são o ponto de aplicação primário; os CHECKs
// declarativos abaixo são a segunda linha de defesa no próprio banco.
func reservationConstraints(p reservation.Policy) []checkConstraint {
	starts := make([]string, 0, len(p.StartTimes))
	for _, s := range p.StartTimes {
		starts = append(starts, quote(s))
	}

	pairs := make([]string, 0, len(p.Pairs))
	for _, pair := range p.Pairs {
		pairs = append(pairs, fmt.Sprintf("(%s, %s)", quote(pair.Start), quote(pair.End)))
	}

	return []checkConstraint{
		{
			Name: "check_date_within_window",
			Check: fmt.Sprintf(
				"reservation_date >= CURRENT_DATE AND reservation_date <= CURRENT_DATE + %d",
				p.WindowDays,
			),
		},
		{
			Name:  "check_not_closed_day",
			Check: fmt.Sprintf("EXTRACT(DOW FROM reservation_date) <> %d", int(p.ClosedWeekday)),
		},
		{
			Name:  "check_allowed_start_times",
			Check: fmt.Sprintf("start_time IN (%s)", strings.Join(starts, ", ")),
		},
		{
			Name:  "check_allowed_slot_pairs",
			Check: fmt.Sprintf("(start_time, end_time) IN (%s)", strings.Join(pairs, ", ")),
		},
	}
}

func dropConstraintSQL(c checkConstraint) string {
	return fmt.Sprintf("ALTER TABLE reservations DROP CONSTRAINT IF EXISTS %s", c.Name)
}

// NOT VALID: o CHECK só vale para escritas novas. Linhas históricas —
// datas já passadas, grades de horário de uma política anterior — não
// podem derrubar o boot ao recriar a constraint.
func addConstraintSQL(c checkConstraint) string {
	return fmt.Sprintf(
		"ALTER TABLE reservations ADD CONSTRAINT %s CHECK (%s) NOT VALID",
		c.Name, c.Check,
	)
}

func applyReservationConstraints(db *gorm.DB, p reservation.Policy) {
	for _, c := range reservationConstraints(p) {
		db.Exec(dropConstraintSQL(c))

		if err := db.Exec(addConstraintSQL(c)).Error; err != nil {
			log.Fatalf("failed to apply constraint %s: %v", c.Name, err)
		}
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Inventário inicial do salão. A gestão do inventário é de um processo
// administrativo externo; o seed só cobre a primeira subida.
func seedDiningTables(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.DiningTable{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	db.Create(&[]models.DiningTable{
		{Name: "Window Two", Capacity: 2},
		{Name: "Corner Two", Capacity: 2},
		{Name: "Main Four", Capacity: 4},
		{Name: "Garden Four", Capacity: 4},
		{Name: "Family Six", Capacity: 6},
		{Name: "Banquet Eight", Capacity: 8},
	})
}
