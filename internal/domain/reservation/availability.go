package reservation

import "time"

type AvailabilityInput struct {
	Date   time.Time
	Guests int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
