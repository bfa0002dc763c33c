package db

import (
	"strings"
	"testing"

	reservation "github.com/ruzaikr/table-booking/internal/domain/reservation"
)

func TestReservationConstraintsFollowPolicy(t *testing.T) {
	p := reservation.DefaultPolicy()
	constraints := reservationConstraints(p)

	if len(constraints) != 4 {
		t.Fatalf("expected 4 constraints, got %d", len(constraints))
	}

	byName := map[string]string{}
	for _, c := range constraints {
		byName[c.Name] = c.Check
	}

	if check := byName["check_date_within_window"]; !strings.Contains(check, "CURRENT_DATE + 20") {
		t.Errorf("window check must carry the configured window, got %q", check)
	}
	if check := byName["check_not_closed_day"]; !strings.Contains(check, "<> 1") {
		t.Errorf("closure check must carry Monday (DOW 1), got %q", check)
	}
	if check := byName["check_allowed_start_times"]; !strings.Contains(check, "'18:00'") || !strings.Contains(check, "'21:00'") {
		t.Errorf("start-time check must list the allowed starts, got %q", check)
	}
	if check := byName["check_allowed_slot_pairs"]; !strings.Contains(check, "('18:00', '20:00')") {
		t.Errorf("pair check must list the allowed pairs, got %q", check)
	}
}

// Reservas históricas (datas já passadas, grades antigas) não passam
// nos CHECKs atuais; recriar a constraint validando a tabela inteira
// derrubaria todo restart. NOT VALID limita o CHECK a escritas novas.
func TestAddConstraintSkipsExistingRows(t *testing.T) {
	for _, c := range reservationConstraints(reservation.DefaultPolicy()) {
		stmt := addConstraintSQL(c)
		if !strings.HasSuffix(stmt, "NOT VALID") {
			t.Errorf("constraint %s must be added NOT VALID, got %q", c.Name, stmt)
		}
	}
}

func TestDropConstraintIsIdempotent(t *testing.T) {
	c := checkConstraint{Name: "check_date_within_window"}
	if !strings.Contains(dropConstraintSQL(c), "DROP CONSTRAINT IF EXISTS") {
		t.Error("drop must tolerate a missing constraint")
	}
}
