package dialogue

import (
	"fmt"

	"musebot/models"
)

// Effect is a pending gateway call the service layer must execute before the
// transition can finish. Advance and the Resolve* continuations below are
// pure; they never touch the network themselves.
type Effect interface{ isEffect() }

// CheckAvailabilityEffect asks the availability gateway how many tickets
// remain for the requested slot. Slot is the normalized candidate; the
// session is not advanced until the answer arrives.
type CheckAvailabilityEffect struct {
	Query models.AvailabilityQuery
}

// FindNextSlotEffect asks the availability gateway for the next open slot
// after the requested one.
type FindNextSlotEffect struct {
	Query models.AvailabilityQuery
}

// CommitBookingEffect asks the availability gateway to commit the booking.
type CommitBookingEffect struct {
	SessionID string
	Query     models.AvailabilityQuery
	Tickets   int
}

func (CheckAvailabilityEffect) isEffect() {}
func (FindNextSlotEffect) isEffect()      {}
func (CommitBookingEffect) isEffect()     {}

// Decision is the outcome of one pure transition: the replacement session
// snapshot, the replies to emit, and at most one pending gateway effect.
type Decision struct {
	Session models.BookingSession
	Replies []models.ReplyEvent
	Effect  Effect
}

func reply(s models.BookingSession, texts ...string) Decision {
	d := Decision{Session: s}
	for _, t := range texts {
		d.Replies = append(d.Replies, models.BotReply(t))
	}
	return d
}

// Advance consumes one utterance against the current session snapshot and
// decides the next state. Deterministic: same session and utterance always
// produce the same decision.
func Advance(s models.BookingSession, utterance string) Decision {
	switch s.Step {
	case models.StepInitial:
		return advanceInitial(s, utterance)
	case models.StepSwitchToAdvanced:
		return advanceSwitchToAdvanced(s, utterance)
	case models.StepMuseum:
		return advanceMuseum(s, utterance)
	case models.StepDate:
		return advanceDate(s, utterance)
	case models.StepTime:
		return advanceTime(s, utterance)
	case models.StepAlternateTime:
		return advanceAlternateTime(s, utterance)
	case models.StepRetryDate:
		return advanceRetryDate(s, utterance)
	case models.StepTickets:
		return advanceTickets(s, utterance)
	case models.StepConfirm:
		return advanceConfirm(s, utterance)
	default:
		// complete, or any unrecognized step: reset and offer a fresh start.
		return reply(s.Reset(), promptDefault)
	}
}

func advanceInitial(s models.BookingSession, utterance string) Decision {
	if containsAny(utterance, "reservation", "book", "ticket") {
		s.Step = models.StepMuseum
		return reply(s, promptMuseumChoices)
	}
	s.Step = models.StepSwitchToAdvanced
	d := Decision{Session: s}
	d.Replies = append(d.Replies, models.EscalatedReply(promptOfferEscalation))
	return d
}

func advanceSwitchToAdvanced(s models.BookingSession, utterance string) Decision {
	if MatchAffirmative(utterance) {
		s.Mode = models.ModeEscalated
		d := Decision{Session: s}
		d.Replies = append(d.Replies, models.EscalatedReply(promptEscalationConnected))
		return d
	}
	s.Step = models.StepMuseum
	return reply(s, promptResumeBooking)
}

func advanceMuseum(s models.BookingSession, utterance string) Decision {
	museum, ok := MatchMuseum(utterance)
	if !ok {
		return reply(s, promptMuseumRetry)
	}
	s.Museum = museum
	s.Step = models.StepDate
	return reply(s, fmt.Sprintf(
		"Excellent choice! The %s is a fantastic museum. What date would you like to visit? (Please use the format MM/DD/YYYY)",
		museum))
}

func advanceDate(s models.BookingSession, utterance string) Decision {
	date, ok := MatchDate(utterance)
	if !ok {
		return reply(s, promptDateRetry)
	}
	s.Date = date
	s.Step = models.StepTime
	return reply(s, fmt.Sprintf(
		"Got it, you'd like to visit on %s. What time would you prefer? We have slots available every hour from 9:00 AM to 4:00 PM.",
		date))
}

func advanceTime(s models.BookingSession, utterance string) Decision {
	token, ok := MatchTime(utterance)
	if !ok {
		return reply(s, promptTimeRetry)
	}
	slot, inWindow, err := NormalizeTime(token)
	if err != nil {
		return reply(s, promptTimeRetry)
	}
	if !inWindow {
		return reply(s, promptTimeOutOfWindow)
	}
	// The session only advances once the availability answer comes back.
	return Decision{
		Session: s,
		Effect: CheckAvailabilityEffect{
			Query: models.AvailabilityQuery{Museum: s.Museum, Date: s.Date, TimeSlot: slot},
		},
	}
}

// ResolveAvailability continues the time transition once the availability
// gateway has answered for the requested slot.
func ResolveAvailability(s models.BookingSession, requestedSlot string, available int) Decision {
	if available > 0 {
		s.TimeSlot = requestedSlot
		s.Step = models.StepTickets
		return reply(s, fmt.Sprintf(
			"Great! We have tickets available for %s. How many tickets would you like to book?",
			requestedSlot))
	}
	return Decision{
		Session: s,
		Effect: FindNextSlotEffect{
			Query: models.AvailabilityQuery{Museum: s.Museum, Date: s.Date, TimeSlot: requestedSlot},
		},
	}
}

// ResolveNextSlot continues the time transition once the next-slot lookup has
// answered. A nil next slot means the day is fully booked.
func ResolveNextSlot(s models.BookingSession, requestedSlot string, next *string) Decision {
	if next == nil {
		s.Step = models.StepRetryDate
		return reply(s, promptNoSlotsToday)
	}
	s.TimeSlot = *next
	s.Step = models.StepAlternateTime
	return reply(s, fmt.Sprintf(
		"I'm sorry, but the %s slot is not available. The next available slot is at %s. Would you like to book for this time instead? (Yes/No)",
		requestedSlot, *next))
}

func advanceAlternateTime(s models.BookingSession, utterance string) Decision {
	// Only an explicit yes accepts the candidate slot; everything else routes
	// to the retry-date question.
	if MatchYesNo(utterance) == AnswerYes {
		s.Step = models.StepTickets
		return reply(s, fmt.Sprintf(
			"Great! How many tickets would you like to book for %s?", s.TimeSlot))
	}
	s.Step = models.StepRetryDate
	return reply(s, promptRetryDate)
}

func advanceRetryDate(s models.BookingSession, utterance string) Decision {
	if MatchYesNo(utterance) == AnswerYes {
		s.Date = ""
		s.TimeSlot = ""
		s.Step = models.StepDate
		return reply(s, promptNewDate)
	}
	return reply(s.Reset(), promptGiveUp)
}

func advanceTickets(s models.BookingSession, utterance string) Decision {
	count, ok := MatchTicketCount(utterance)
	if !ok {
		return reply(s, promptTicketsRetry)
	}
	s.Tickets = count
	s.Step = models.StepConfirm
	summary := fmt.Sprintf(
		"Great! I've noted that you want %d ticket(s). Here's a summary of your booking:\n\n"+
			"Museum: %s\nDate: %s\nTime: %s\nTickets: %d\n\n"+
			"Is this correct? (Please respond with Yes or No)",
		count, s.Museum, s.Date, s.TimeSlot, count)
	return reply(s, summary)
}

func advanceConfirm(s models.BookingSession, utterance string) Decision {
	switch MatchYesNo(utterance) {
	case AnswerYes:
		return Decision{
			Session: s,
			Effect: CommitBookingEffect{
				SessionID: s.SessionID,
				Query:     models.AvailabilityQuery{Museum: s.Museum, Date: s.Date, TimeSlot: s.TimeSlot},
				Tickets:   s.Tickets,
			},
		}
	case AnswerNo:
		next := s.Reset()
		next.Step = models.StepMuseum
		return reply(next, promptStartOver)
	default:
		return reply(s, promptConfirmRetry)
	}
}

// ResolveCommit finishes the confirm transition once the booking commit has
// answered. Failure resets the whole session: the gathered inputs are treated
// as stale rather than retried in place.
func ResolveCommit(s models.BookingSession, committed bool, ticketURL string) Decision {
	if !committed {
		return reply(s.Reset(), promptBookingError)
	}
	s.Step = models.StepComplete
	d := reply(s, promptComplete)
	d.Replies = append(d.Replies, models.ReplyEvent{
		IsBot: true,
		Artifact: &models.TicketArtifact{
			SessionID:   s.SessionID,
			DownloadURL: ticketURL,
		},
	})
	return d
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if containsFold(text, w) {
			return true
		}
	}
	return false
}
