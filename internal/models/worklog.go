package models

// WorkRecord accumulates the seconds spent in work mode for one
// local calendar day. Records are only ever created and incremented;
// cleanup is an archival concern outside the core.
type WorkRecord struct {
	Date          string `json:"date"` // YYYY-MM-DD, local calendar day
	SecondsWorked int    `json:"seconds_worked"`
}

// FocusMinutes returns the record's total rounded down to whole minutes.
func (r WorkRecord) FocusMinutes() int {
	return r.SecondsWorked / 60
}
