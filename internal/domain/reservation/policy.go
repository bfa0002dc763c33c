package reservation

import "time"

// ===============================
// Booking Policy
// ===============================

// SlotPair é um par (início, fim) permitido. A lista de pares é a fonte
// de verdade: o horário de fim é sempre consultado aqui, nunca calculado.
type SlotPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Policy struct {
	StartTimes    []string
	Pairs         []SlotPair
	WindowDays    int
	ClosedWeekday time.Weekday
}

const DefaultVisitDuration = 2 * time.Hour

// DefaultPolicy reproduz a política padrão do restaurante: jantar das
// 18:00 às 21:00 em intervalos de meia hora, visitas de 2h, janela de
// 20 dias, fechado às segundas.
func DefaultPolicy() Policy {
	starts := []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00"}

	pairs := make([]SlotPair, 0, len(starts))
	for _, s := range starts {
		t, _ := time.Parse("15:04", s)
		pairs = append(pairs, SlotPair{
			Start: s,
			End:   t.Add(DefaultVisitDuration).Format("15:04"),
		})
	}

	return Policy{
		StartTimes:    starts,
		Pairs:         pairs,
		WindowDays:    20,
		ClosedWeekday: time.Monday,
	}
}

func (p Policy) AllowsStart(start string) bool {
	for _, s := range p.StartTimes {
		if s == start {
			return true
		}
	}
	return false
}

// EndFor devolve o horário de fim permitido para o início dado. Retorna
// false quando o início não consta na lista de pares, mesmo que conste
// na lista de inícios.
func (p Policy) EndFor(start string) (string, bool) {
	for _, pair := range p.Pairs {
		if pair.Start == start {
			return pair.End, true
		}
	}
	return "", false
}

// ValidateDate confere a janela de reserva e o dia de fechamento.
// today deve ser a data corrente no fuso do restaurante, à meia-noite.
func (p Policy) ValidateDate(date, today time.Time) error {
	if date.Before(today) || date.After(today.AddDate(0, 0, p.WindowDays)) {
		return ErrOutOfWindow()
	}
	if date.Weekday() == p.ClosedWeekday {
		return ErrClosedDay()
	}
	return nil
}
