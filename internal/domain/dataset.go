package domain

import "time"

// RowError descreve uma linha rejeitada na carga do dataset
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// LoadReport resume a carga do dataset: toda linha lida foi aceita ou
// aparece em Rejected
type LoadReport struct {
	Source       string     `json:"source"`
	Format       string     `json:"format"`
	RowPolicy    string     `json:"row_policy"`
	Fingerprint  string     `json:"fingerprint"`
	LoadedAt     time.Time  `json:"loaded_at"`
	RowsRead     int        `json:"rows_read"`
	RowsAccepted int        `json:"rows_accepted"`
	RowsRejected int        `json:"rows_rejected"`
	Rejected     []RowError `json:"rejected"`
}

// Reject registra uma linha rejeitada
func (r *LoadReport) Reject(row int, reason string) {
	r.RowsRejected++
	r.Rejected = append(r.Rejected, RowError{Row: row, Reason: reason})
}

// FilterOptions lista os valores disponíveis para os filtros do dashboard
type FilterOptions struct {
	MinDate        *time.Time      `json:"min_date"`
	MaxDate        *time.Time      `json:"max_date"`
	CoffeeNames    []string        `json:"coffee_names"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Seasons        []Season        `json:"seasons"`
	TimesOfDay     []TimeOfDay     `json:"times_of_day"`
	Weekdays       []string        `json:"weekdays"`
	Years          []int           `json:"years"`
}
