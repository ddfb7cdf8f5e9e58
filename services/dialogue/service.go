// File: services/dialogue/service.go
package dialogue

import (
	"context"
	"errors"
	"fmt"

	recordsRepo "musebot/database/repository/records"
	"musebot/models"
	"musebot/services/gateway"
	"musebot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DialogueService is the conversation engine behind /api/chat.
type DialogueService interface {
	StartSession(ctx context.Context) (models.BookingSession, []models.ReplyEvent, error)
	HandleUtterance(ctx context.Context, sessionID, text string) ([]models.ReplyEvent, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// DefaultDialogueService implements DialogueService. One utterance is handled
// at a time per session: load snapshot, run the pure machine, execute any
// pending gateway effect, store the replacement snapshot.
type DefaultDialogueService struct {
	Sessions     SessionStore
	Availability gateway.AvailabilityGateway
	Escalation   gateway.EscalationGateway
	Records      recordsRepo.BookingRecordRepository

	// NewSessionID generates session identifiers; tests inject a
	// deterministic one. Defaults to uuid.NewString.
	NewSessionID func() string

	// TicketBasePath prefixes the artifact download URL, e.g. "/api/tickets/".
	TicketBasePath string
}

func (s *DefaultDialogueService) sessionID() string {
	if s.NewSessionID != nil {
		return s.NewSessionID()
	}
	return uuid.NewString()
}

func (s *DefaultDialogueService) ticketURL(sessionID string) string {
	base := s.TicketBasePath
	if base == "" {
		base = "/api/tickets/"
	}
	return base + sessionID
}

// StartSession creates a fresh session and returns the welcome message.
func (s *DefaultDialogueService) StartSession(ctx context.Context) (models.BookingSession, []models.ReplyEvent, error) {
	session := models.NewBookingSession(s.sessionID())
	if err := s.Sessions.Set(ctx, session); err != nil {
		return models.BookingSession{}, nil, fmt.Errorf("store new session: %w", err)
	}
	return session, []models.ReplyEvent{models.BotReply(promptWelcome)}, nil
}

// HandleUtterance consumes one user message for the given session. A session
// that has expired from the store is transparently recreated at the initial
// step under the same ID.
func (s *DefaultDialogueService) HandleUtterance(ctx context.Context, sessionID, text string) ([]models.ReplyEvent, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("load session: %w", err)
		}
		fresh := models.NewBookingSession(sessionID)
		session = &fresh
	}

	// Escalated sessions bypass the booking machine entirely.
	if session.Mode == models.ModeEscalated {
		replies := s.escalate(ctx, *session, text)
		if err := s.Sessions.Set(ctx, *session); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
		return replies, nil
	}

	before := session.Step
	d := Advance(*session, text)
	replies := append([]models.ReplyEvent{}, d.Replies...)
	for d.Effect != nil {
		d = s.resolveEffect(ctx, d)
		replies = append(replies, d.Replies...)
	}

	if d.Session.Step == models.StepComplete && before != models.StepComplete {
		s.persistRecord(ctx, d.Session)
	}

	if err := s.Sessions.Set(ctx, d.Session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return replies, nil
}

// ResetSession drops the stored session.
func (s *DefaultDialogueService) ResetSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}

// resolveEffect executes one pending gateway effect and feeds the result back
// into the pure continuation for that transition. Transport failures on
// availability lookups leave the session untouched so the user can retry the
// same step; commit failures reset the conversation.
func (s *DefaultDialogueService) resolveEffect(ctx context.Context, d Decision) Decision {
	logger := utils.GetLogger()

	switch eff := d.Effect.(type) {
	case CheckAvailabilityEffect:
		count, err := s.Availability.CheckAvailability(ctx, eff.Query)
		if err != nil {
			logger.Error("availability check failed",
				zap.String("sessionID", d.Session.SessionID),
				zap.String("museum", eff.Query.Museum),
				zap.Error(err))
			return Decision{Session: d.Session, Replies: []models.ReplyEvent{models.BotReply(promptAvailabilityError)}}
		}
		return ResolveAvailability(d.Session, eff.Query.TimeSlot, count)

	case FindNextSlotEffect:
		next, err := s.Availability.FindNextSlot(ctx, eff.Query)
		if err != nil {
			logger.Error("next-slot lookup failed",
				zap.String("sessionID", d.Session.SessionID),
				zap.String("museum", eff.Query.Museum),
				zap.Error(err))
			return Decision{Session: d.Session, Replies: []models.ReplyEvent{models.BotReply(promptAvailabilityError)}}
		}
		return ResolveNextSlot(d.Session, eff.Query.TimeSlot, next)

	case CommitBookingEffect:
		committed, err := s.Availability.CommitBooking(ctx, eff.SessionID, eff.Query, eff.Tickets)
		if err != nil {
			logger.Error("booking commit failed",
				zap.String("sessionID", eff.SessionID),
				zap.Error(err))
			committed = false
		}
		return ResolveCommit(d.Session, committed, s.ticketURL(d.Session.SessionID))

	default:
		return Decision{Session: d.Session}
	}
}

// escalate forwards the utterance to the FAQ responder. A failed call falls
// back to an apology but keeps the session escalated.
func (s *DefaultDialogueService) escalate(ctx context.Context, session models.BookingSession, text string) []models.ReplyEvent {
	logger := utils.GetLogger()

	answer, err := s.Escalation.Ask(ctx, session.SessionID, text)
	if err != nil {
		logger.Error("FAQ escalation failed",
			zap.String("sessionID", session.SessionID),
			zap.Error(err))
		return []models.ReplyEvent{models.EscalatedReply(promptEscalationDown)}
	}
	return []models.ReplyEvent{models.EscalatedReply(answer)}
}

// persistRecord writes the completed reservation so the ticket endpoint can
// serve it. A write failure is logged but does not unwind the confirmation
// the user already received from the backend.
func (s *DefaultDialogueService) persistRecord(ctx context.Context, session models.BookingSession) {
	if s.Records == nil {
		return
	}
	logger := utils.GetLogger()

	_, err := s.Records.Create(ctx, models.BookingRecord{
		SessionID: session.SessionID,
		Museum:    session.Museum,
		Date:      session.Date,
		TimeSlot:  session.TimeSlot,
		Tickets:   session.Tickets,
	})
	if err != nil {
		logger.Error("failed to persist booking record",
			zap.String("sessionID", session.SessionID),
			zap.Error(err))
	}
}

var _ DialogueService = (*DefaultDialogueService)(nil)
