package reservation

import (
	"context"
	"testing"
	"time"

	domain "github.com/ruzaikr/table-booking/internal/domain/reservation"
	"github.com/ruzaikr/table-booking/internal/models"
)

func newAvailability(repo domain.Repository) *GetAvailability {
	uc := NewGetAvailability(repo, domain.DefaultPolicy(), "UTC")
	uc.now = func() time.Time { return testNow }
	return uc
}

func day(s string) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return d
}

func TestAvailabilityAllSlotsWhenLedgerEmpty(t *testing.T) {
	repo := newFakeRepo(models.DiningTable{ID: 1, Name: "Main Four", Capacity: 4})
	uc := newAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:   day("2026-03-05"),
		Guests: 2,
	})
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("expected all 7 slots, got %d", len(slots))
	}
	if slots[0].Start != "18:00" || slots[0].End != "20:00" {
		t.Errorf("unexpected first slot %+v", slots[0])
	}
}

func TestAvailabilityExcludesCoveredSlots(t *testing.T) {
	repo := newFakeRepo(models.DiningTable{ID: 1, Name: "Main Four", Capacity: 4})
	uc := newAvailability(repo)

	in := validInput()
	in.StartTime = "19:00" // ocupa 19:00–21:00
	if _, err := newSubmit(repo).Execute(context.Background(), in); err != nil {
		t.Fatalf("seed submit failed: %v", err)
	}

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:   day("2026-03-05"),
		Guests: 2,
	})
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}

	// Só 21:00–23:00 escapa da visita de 19:00–21:00 na única mesa.
	if len(slots) != 1 || slots[0].Start != "21:00" {
		t.Fatalf("expected only the 21:00 slot, got %+v", slots)
	}
}

func TestAvailabilitySecondTableKeepsSlotOpen(t *testing.T) {
	repo := newFakeRepo(
		models.DiningTable{ID: 1, Name: "Main Four", Capacity: 4},
		models.DiningTable{ID: 2, Name: "Garden Four", Capacity: 4},
	)
	uc := newAvailability(repo)

	if _, err := newSubmit(repo).Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("seed submit failed: %v", err)
	}

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:   day("2026-03-05"),
		Guests: 4,
	})
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if len(slots) != 7 {
		t.Errorf("second table should keep every slot open, got %d", len(slots))
	}
}

func TestAvailabilityEmptyOutsidePolicy(t *testing.T) {
	repo := newFakeRepo(models.DiningTable{ID: 1, Name: "Main Four", Capacity: 4})
	uc := newAvailability(repo)

	cases := []struct {
		name string
		in   domain.AvailabilityInput
	}{
		{"closed day", domain.AvailabilityInput{Date: day("2026-03-09"), Guests: 2}},
		{"beyond window", domain.AvailabilityInput{Date: day("2026-03-25"), Guests: 2}},
		{"party larger than any table", domain.AvailabilityInput{Date: day("2026-03-05"), Guests: 10}},
		{"zero guests", domain.AvailabilityInput{Date: day("2026-03-05"), Guests: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := uc.Execute(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("availability failed: %v", err)
			}
			if len(slots) != 0 {
				t.Errorf("expected no slots, got %+v", slots)
			}
		})
	}
}
