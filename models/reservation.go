package models

// Phase is the dialog engine's conversation phase.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseCollecting    Phase = "collecting"
	PhaseConfirm       Phase = "confirm"
	PhaseCancelConfirm Phase = "cancel_confirm"
)

// ReservationDraft is the reservation under construction. Zero values mean
// the field has not been collected yet.
type ReservationDraft struct {
	Day    string `json:"day,omitempty"`  // canonical weekday name, e.g. "Friday"
	Date   string `json:"date,omitempty"` // display label: weekday name, "Today" or "Tomorrow"
	Time   string `json:"time,omitempty"` // normalized "H:MM AM/PM"
	Guests int    `json:"guests,omitempty"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// Complete reports whether all required fields have been collected.
// Date is derived from Day and does not count.
func (r ReservationDraft) Complete() bool {
	return r.Day != "" && r.Time != "" && r.Guests != 0 && r.Name != "" && r.Phone != ""
}

// ConversationState is the per-session dialog state. It is a plain value:
// the engine takes one in and returns the successor, and the HTTP surface
// round-trips it through the session store as JSON.
type ConversationState struct {
	Phase     Phase             `json:"phase"`
	Draft     ReservationDraft  `json:"draft"`
	Confirmed *ReservationDraft `json:"confirmed,omitempty"`
}

// NewConversationState returns the initial state for a fresh session.
func NewConversationState() ConversationState {
	return ConversationState{Phase: PhaseIdle}
}
