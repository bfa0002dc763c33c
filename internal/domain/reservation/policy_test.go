package reservation

import (
	"testing"
	"time"

	"github.com/ruzaikr/table-booking/internal/httperr"
)

func TestDefaultPolicyStartTimes(t *testing.T) {
	p := DefaultPolicy()

	for _, s := range []string{"18:00", "19:30", "21:00"} {
		if !p.AllowsStart(s) {
			t.Errorf("expected %s to be allowed", s)
		}
	}
	for _, s := range []string{"18:15", "17:00", "21:30", "", "6pm"} {
		if p.AllowsStart(s) {
			t.Errorf("expected %s to be rejected", s)
		}
	}
}

func TestEndForUsesPairList(t *testing.T) {
	p := DefaultPolicy()

	end, ok := p.EndFor("18:30")
	if !ok || end != "20:30" {
		t.Fatalf("expected 20:30 for 18:30, got %q (ok=%v)", end, ok)
	}

	if _, ok := p.EndFor("18:15"); ok {
		t.Error("expected no pair for 18:15")
	}

	// Sem o par, o início não rende fim algum, mesmo permitido na
	// lista de inícios.
	p.Pairs = p.Pairs[1:]
	if _, ok := p.EndFor("18:00"); ok {
		t.Error("expected no pair for 18:00 after trimming the pair list")
	}
	if !p.AllowsStart("18:00") {
		t.Error("start list should still allow 18:00")
	}
}

func TestValidateDateWindow(t *testing.T) {
	p := DefaultPolicy()
	today := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC) // quarta

	cases := []struct {
		name string
		date time.Time
		code string
	}{
		{"today", today, ""},
		{"last day of window", today.AddDate(0, 0, 20), ""},
		{"one past the window", today.AddDate(0, 0, 21), CodeOutOfWindow},
		{"yesterday", today.AddDate(0, 0, -1), CodeOutOfWindow},
		{"closure weekday", time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), CodeClosedDay},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.ValidateDate(tc.date, today)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("expected date to pass, got %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestValidateDateConfigurableClosure(t *testing.T) {
	p := DefaultPolicy()
	p.ClosedWeekday = time.Sunday

	today := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	if err := p.ValidateDate(monday, today); err != nil {
		t.Errorf("monday should pass with sunday closure, got %v", err)
	}
	if !httperr.IsBusiness(p.ValidateDate(sunday, today), CodeClosedDay) {
		t.Error("sunday should be the closed day")
	}
}
