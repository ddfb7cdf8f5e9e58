package dialogue

import (
	"context"
	"errors"
	"testing"

	"musebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (m *memorySessionStore) Set(ctx context.Context, session models.BookingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memorySessionStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type fakeAvailabilityGateway struct {
	available    int
	availableErr error
	nextSlot     *string
	nextSlotErr  error
	commitOK     bool
	commitErr    error
	commits      int
}

func (f *fakeAvailabilityGateway) CheckAvailability(ctx context.Context, query models.AvailabilityQuery) (int, error) {
	return f.available, f.availableErr
}

func (f *fakeAvailabilityGateway) FindNextSlot(ctx context.Context, query models.AvailabilityQuery) (*string, error) {
	return f.nextSlot, f.nextSlotErr
}

func (f *fakeAvailabilityGateway) CommitBooking(ctx context.Context, sessionID string, query models.AvailabilityQuery, tickets int) (bool, error) {
	f.commits++
	return f.commitOK, f.commitErr
}

type fakeEscalationGateway struct {
	queries []string
	answer  string
	err     error
}

func (f *fakeEscalationGateway) Ask(ctx context.Context, sessionID, query string) (string, error) {
	f.queries = append(f.queries, query)
	return f.answer, f.err
}

type fakeRecordsRepo struct {
	records []models.BookingRecord
	err     error
}

func (f *fakeRecordsRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.records = append(f.records, record)
	return record.SessionID, nil
}

func (f *fakeRecordsRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	for i := range f.records {
		if f.records[i].SessionID == sessionID {
			return &f.records[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRecordsRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return nil
}

func newTestService(avail *fakeAvailabilityGateway, esc *fakeEscalationGateway, records *fakeRecordsRepo) (*DefaultDialogueService, *memorySessionStore) {
	store := newMemorySessionStore()
	svc := &DefaultDialogueService{
		Sessions:     store,
		Availability: avail,
		Escalation:   esc,
		Records:      records,
		NewSessionID: func() string { return "fixed-session" },
	}
	return svc, store
}

func TestFullBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	avail := &fakeAvailabilityGateway{available: 5, commitOK: true}
	records := &fakeRecordsRepo{}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, records)

	session, welcome, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.Len(t, welcome, 1)
	assert.Equal(t, "fixed-session", session.SessionID)

	var artifacts int
	for _, utterance := range []string{
		"I want to book a ticket",
		"Louvre",
		"09/15/2024",
		"10:00 am",
		"2",
		"yes",
	} {
		replies, err := svc.HandleUtterance(ctx, session.SessionID, utterance)
		require.NoError(t, err, "utterance %q", utterance)
		require.NotEmpty(t, replies, "utterance %q", utterance)
		for _, r := range replies {
			if r.Artifact != nil {
				artifacts++
			}
		}
	}

	final := store.sessions[session.SessionID]
	assert.Equal(t, models.StepComplete, final.Step)
	assert.Equal(t, "louvre", final.Museum)
	assert.Equal(t, "09/15/2024", final.Date)
	assert.Equal(t, "10:00", final.TimeSlot)
	assert.Equal(t, 2, final.Tickets)

	assert.Equal(t, 1, artifacts, "exactly one ticket artifact must be emitted")
	assert.Equal(t, 1, avail.commits)
	require.Len(t, records.records, 1)
	assert.Equal(t, "fixed-session", records.records[0].SessionID)
}

func TestUnavailableSlotOffersAlternate(t *testing.T) {
	ctx := context.Background()
	next := "14:00"
	avail := &fakeAvailabilityGateway{available: 0, nextSlot: &next}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, &fakeRecordsRepo{})

	seedSession(store, models.StepTime, "louvre", "09/15/2024")

	replies, err := svc.HandleUtterance(ctx, "fixed-session", "10:00 am")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "14:00")

	s := store.sessions["fixed-session"]
	assert.Equal(t, models.StepAlternateTime, s.Step)
	assert.Equal(t, "14:00", s.TimeSlot)

	// Declining the alternate moves to the retry-date question.
	_, err = svc.HandleUtterance(ctx, "fixed-session", "no")
	require.NoError(t, err)
	assert.Equal(t, models.StepRetryDate, store.sessions["fixed-session"].Step)
}

func TestUnavailableSlotAcceptAlternate(t *testing.T) {
	ctx := context.Background()
	next := "14:00"
	avail := &fakeAvailabilityGateway{available: 0, nextSlot: &next}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, &fakeRecordsRepo{})

	seedSession(store, models.StepTime, "louvre", "09/15/2024")

	_, err := svc.HandleUtterance(ctx, "fixed-session", "10:00 am")
	require.NoError(t, err)
	_, err = svc.HandleUtterance(ctx, "fixed-session", "yes")
	require.NoError(t, err)

	s := store.sessions["fixed-session"]
	assert.Equal(t, models.StepTickets, s.Step)
	assert.Equal(t, "14:00", s.TimeSlot)
}

func TestNoSlotLeftMovesToRetryDate(t *testing.T) {
	ctx := context.Background()
	avail := &fakeAvailabilityGateway{available: 0, nextSlot: nil}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, &fakeRecordsRepo{})

	seedSession(store, models.StepTime, "louvre", "09/15/2024")

	replies, err := svc.HandleUtterance(ctx, "fixed-session", "10:00 am")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, models.StepRetryDate, store.sessions["fixed-session"].Step)
}

func TestAvailabilityErrorKeepsStep(t *testing.T) {
	ctx := context.Background()
	avail := &fakeAvailabilityGateway{availableErr: errors.New("backend down")}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, &fakeRecordsRepo{})

	seedSession(store, models.StepTime, "louvre", "09/15/2024")

	replies, err := svc.HandleUtterance(ctx, "fixed-session", "10:00 am")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, promptAvailabilityError, replies[0].Text)

	s := store.sessions["fixed-session"]
	assert.Equal(t, models.StepTime, s.Step, "availability failure is retryable in place")
	assert.Empty(t, s.TimeSlot)
}

func TestCommitFailureResetsSession(t *testing.T) {
	ctx := context.Background()
	avail := &fakeAvailabilityGateway{commitErr: errors.New("backend down")}
	records := &fakeRecordsRepo{}
	svc, store := newTestService(avail, &fakeEscalationGateway{}, records)

	s := models.NewBookingSession("fixed-session")
	s.Step = models.StepConfirm
	s.Museum = "louvre"
	s.Date = "09/15/2024"
	s.TimeSlot = "10:00"
	s.Tickets = 2
	store.sessions[s.SessionID] = s

	replies, err := svc.HandleUtterance(ctx, "fixed-session", "yes")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, promptBookingError, replies[0].Text)

	after := store.sessions["fixed-session"]
	assert.Equal(t, models.StepInitial, after.Step)
	assert.Empty(t, after.Museum)
	assert.Empty(t, records.records)
}

func TestEscalatedModeBypassesMachine(t *testing.T) {
	ctx := context.Background()
	esc := &fakeEscalationGateway{answer: "We open at 9am."}
	svc, store := newTestService(&fakeAvailabilityGateway{}, esc, &fakeRecordsRepo{})

	session, _, err := svc.StartSession(ctx)
	require.NoError(t, err)

	// A non-booking utterance, then an affirmative, flips the session into
	// escalated mode.
	_, err = svc.HandleUtterance(ctx, session.SessionID, "when do you open?")
	require.NoError(t, err)
	_, err = svc.HandleUtterance(ctx, session.SessionID, "yes")
	require.NoError(t, err)
	assert.Equal(t, models.ModeEscalated, store.sessions[session.SessionID].Mode)

	// From here every utterance goes to the FAQ responder, even booking
	// keywords that would otherwise drive the machine.
	replies, err := svc.HandleUtterance(ctx, session.SessionID, "book a ticket")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.True(t, replies[0].Escalated)
	assert.Equal(t, "We open at 9am.", replies[0].Text)
	assert.Equal(t, []string{"book a ticket"}, esc.queries)
	assert.Equal(t, models.StepSwitchToAdvanced, store.sessions[session.SessionID].Step,
		"the booking step is frozen while escalated")
}

func TestEscalationFailureKeepsEscalatedMode(t *testing.T) {
	ctx := context.Background()
	esc := &fakeEscalationGateway{err: errors.New("faq service down")}
	svc, store := newTestService(&fakeAvailabilityGateway{}, esc, &fakeRecordsRepo{})

	s := models.NewBookingSession("fixed-session")
	s.Mode = models.ModeEscalated
	store.sessions[s.SessionID] = s

	replies, err := svc.HandleUtterance(ctx, "fixed-session", "when do you open?")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.True(t, replies[0].Escalated)
	assert.Equal(t, models.ModeEscalated, store.sessions["fixed-session"].Mode)
}

func TestExpiredSessionIsRecreated(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(&fakeAvailabilityGateway{}, &fakeEscalationGateway{}, &fakeRecordsRepo{})

	replies, err := svc.HandleUtterance(ctx, "gone-session", "book a ticket")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, models.StepMuseum, store.sessions["gone-session"].Step)
}

func seedSession(store *memorySessionStore, step models.Step, museum, date string) {
	s := models.NewBookingSession("fixed-session")
	s.Step = step
	s.Museum = museum
	s.Date = date
	store.sessions[s.SessionID] = s
}
