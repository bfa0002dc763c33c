package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ruzaikr/table-booking/internal/audit"
	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/httperr"
	"github.com/ruzaikr/table-booking/internal/models"
	"github.com/ruzaikr/table-booking/internal/timezone"
	"github.com/ruzaikr/table-booking/internal/validators"
)

const maxNotesLength = 255

// ======================================================
// INPUT
// ======================================================

type SubmitInput struct {
	Name      string
	Email     string
	Date      string // YYYY-MM-DD
	StartTime string // HH:mm
	Guests    int
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitReservation é a engine de alocação: valida a política, procura
// a menor mesa livre com capacidade suficiente e grava a reserva, tudo
// dentro de uma única transação serializável.
type SubmitReservation struct {
	repo   domain.Repository
	policy domain.Policy
	audit  *audit.Dispatcher

	loc *time.Location
	now func() time.Time
}

func NewSubmitReservation(
	repo domain.Repository,
	policy domain.Policy,
	aud *audit.Dispatcher,
	tz string,
) *SubmitReservation {
	return &SubmitReservation{
		repo:   repo,
		policy: policy,
		audit:  aud,
		loc:    timezone.Location(tz),
		now: func() time.Time {
			return timezone.NowIn(tz)
		},
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReservation) Execute(
	ctx context.Context,
	in SubmitInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Validação estrutural
	// --------------------------------------------------
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" || in.Guests <= 0 || len(in.Notes) > maxNotesLength {
		return nil, domain.ErrInvalidRequest()
	}

	if !validators.IsEmailFormatValid(in.Email) {
		return nil, domain.ErrInvalidRequest()
	}

	if !uc.policy.AllowsStart(in.StartTime) {
		return nil, domain.ErrInvalidRequest()
	}

	// --------------------------------------------------
	// 2️⃣ Horário de fim pela lista de pares
	// --------------------------------------------------
	// A lista de pares é a autoridade; se o início não tiver par,
	// rejeitamos mesmo que a aritmética "funcionasse".
	endTime, ok := uc.policy.EndFor(in.StartTime)
	if !ok {
		return nil, domain.ErrInvalidRequest()
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidRequest()
	}

	// --------------------------------------------------
	// 3️⃣–7️⃣ Política + alocação, numa transação única
	// --------------------------------------------------
	var created *models.Reservation

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		// Janela e dia de fechamento avaliados contra o relógio do
		// commit, não o da montagem do request.
		today := dateOnly(uc.now())
		if err := uc.policy.ValidateDate(date, today); err != nil {
			return err
		}

		dup, err := tx.HasReservationForEmail(ctx, in.Email, date)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateBooking()
		}

		// Menor mesa suficiente primeiro; mesas maiores ficam livres
		// para grupos maiores.
		tables, err := tx.FindTables(ctx, in.Guests)
		if err != nil {
			return err
		}

		var chosen *models.DiningTable
		for i := range tables {
			busy, err := tx.HasOverlap(ctx, tables[i].ID, date, in.StartTime, endTime)
			if err != nil {
				return err
			}
			if !busy {
				chosen = &tables[i]
				break
			}
		}

		if chosen == nil {
			return domain.ErrNoAvailability()
		}

		res := &models.Reservation{
			DiningTableID:    chosen.ID,
			Name:             in.Name,
			Email:            in.Email,
			Notes:            in.Notes,
			ReservationDate:  date,
			StartTime:        in.StartTime,
			EndTime:          endTime,
			ConfirmationCode: uuid.NewString(),
		}

		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}

		res.DiningTable = *chosen
		created = res
		return nil
	})

	if err != nil {
		if httperr.IsStorageConflict(err) {
			err = domain.ErrStorageConflict()
		}
		uc.dispatchRejection(in, err)
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: &created.ID,
			Email:    in.Email,
			Metadata: map[string]any{
				"table_id": created.DiningTableID,
				"date":     in.Date,
				"start":    in.StartTime,
				"end":      endTime,
			},
		})
	}

	return created, nil
}

func (uc *SubmitReservation) dispatchRejection(in SubmitInput, err error) {
	if uc.audit == nil {
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		return
	}

	action := "reservation_rejected"
	if code == domain.CodeNoAvailability || code == domain.CodeStorageConflict {
		action = "reservation_conflict"
	}

	uc.audit.Dispatch(audit.Event{
		Action: action,
		Entity: "reservation",
		Email:  in.Email,
		Metadata: map[string]any{
			"reason": code,
			"date":   in.Date,
			"start":  in.StartTime,
			"guests": in.Guests,
		},
	})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
