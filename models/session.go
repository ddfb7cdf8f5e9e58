package models

// Step identifies where the booking conversation currently is.
type Step string

const (
	StepInitial          Step = "initial"
	StepSwitchToAdvanced Step = "switch_to_advanced"
	StepMuseum           Step = "museum"
	StepDate             Step = "date"
	StepTime             Step = "time"
	StepAlternateTime    Step = "alternate_time"
	StepTickets          Step = "tickets"
	StepConfirm          Step = "confirm"
	StepRetryDate        Step = "retry_date"
	StepComplete         Step = "complete"
)

// Steps lists every valid step value.
var Steps = []Step{
	StepInitial, StepSwitchToAdvanced, StepMuseum, StepDate, StepTime,
	StepAlternateTime, StepTickets, StepConfirm, StepRetryDate, StepComplete,
}

// Mode selects which engine handles the next utterance. Once a session is
// escalated, every utterance goes to the FAQ responder until the session ends.
type Mode string

const (
	ModeBooking   Mode = "booking"
	ModeEscalated Mode = "escalated"
)

// BookingSession is the conversation state threaded through the dialogue
// engine. It is a value type: the engine replaces the stored snapshot on each
// transition rather than mutating it in place.
type BookingSession struct {
	SessionID string `json:"sessionId"`
	Mode      Mode   `json:"mode"`
	Step      Step   `json:"step"`
	Museum    string `json:"museum,omitempty"`
	Date      string `json:"date,omitempty"`
	TimeSlot  string `json:"timeSlot,omitempty"`
	Tickets   int    `json:"tickets,omitempty"`
}

// NewBookingSession returns a fresh session at the initial step.
func NewBookingSession(sessionID string) BookingSession {
	return BookingSession{
		SessionID: sessionID,
		Mode:      ModeBooking,
		Step:      StepInitial,
	}
}

// Reset clears every collected field and returns the session to the initial
// step. The session ID and mode survive the reset.
func (s BookingSession) Reset() BookingSession {
	return BookingSession{
		SessionID: s.SessionID,
		Mode:      s.Mode,
		Step:      StepInitial,
	}
}
