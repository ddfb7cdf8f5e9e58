package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchMuseum(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"I'd love to see the Louvre", "louvre", true},
		{"the BRITISH MUSEUM please", "british museum", true},
		{"metropolitan museum of art on friday", "metropolitan museum of art", true},
		{"take me to the national gallery!", "national gallery", true},
		{"the prado", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, found := MatchMuseum(tt.input)
		assert.Equal(t, tt.found, found, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestMatchDate(t *testing.T) {
	got, ok := MatchDate("how about 09/15/2024 in the morning")
	assert.True(t, ok)
	assert.Equal(t, "09/15/2024", got)

	got, ok = MatchDate("9/5/2024")
	assert.True(t, ok)
	assert.Equal(t, "9/5/2024", got)

	_, ok = MatchDate("next tuesday")
	assert.False(t, ok)

	_, ok = MatchDate("09-15-2024")
	assert.False(t, ok)
}

// The date matcher is deliberately syntactic only: a well-formed but
// calendrically impossible date passes through and is left to the
// availability backend.
func TestMatchDateAcceptsImpossibleCalendarDates(t *testing.T) {
	got, ok := MatchDate("13/45/2024")
	assert.True(t, ok)
	assert.Equal(t, "13/45/2024", got)
}

func TestMatchTime(t *testing.T) {
	got, ok := MatchTime("around 10:00 am works")
	assert.True(t, ok)
	assert.Equal(t, "10:00 am", got)

	got, ok = MatchTime("2pm")
	assert.True(t, ok)
	assert.Equal(t, "2pm", got)

	_, ok = MatchTime("sometime after lunch")
	assert.False(t, ok)
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		token    string
		slot     string
		inWindow bool
	}{
		{"10:00 am", "10:00", true},
		{"9am", "09:00", true},
		{"4 pm", "16:00", true},
		{"4:30 pm", "16:30", false},
		{"2:30pm", "14:30", true},
		{"12 pm", "12:00", true},
		{"8 am", "08:00", false},
		{"5 pm", "17:00", false},
		{"11", "11:00", true},
		// Bare small hours read as afternoon on the visiting clock.
		{"2", "14:00", true},
		{"3:15", "15:15", true},
	}
	for _, tt := range tests {
		slot, inWindow, err := NormalizeTime(tt.token)
		assert.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.slot, slot, "token %q", tt.token)
		assert.Equal(t, tt.inWindow, inWindow, "token %q", tt.token)
	}
}

func TestNormalizeTimeRejectsGarbage(t *testing.T) {
	_, _, err := NormalizeTime("noonish")
	assert.Error(t, err)
}

func TestMatchYesNo(t *testing.T) {
	assert.Equal(t, AnswerYes, MatchYesNo("Yes please"))
	assert.Equal(t, AnswerNo, MatchYesNo("No thanks"))
	// "yes" wins when both appear.
	assert.Equal(t, AnswerYes, MatchYesNo("no wait, yes"))
	assert.Equal(t, AnswerUnknown, MatchYesNo("maybe"))
}

func TestMatchAffirmative(t *testing.T) {
	for _, input := range []string{"yes", "Sure!", "ok then", "yeah"} {
		assert.True(t, MatchAffirmative(input), "input %q", input)
	}
	assert.False(t, MatchAffirmative("nah"))
}

func TestMatchTicketCount(t *testing.T) {
	count, ok := MatchTicketCount("2 tickets please")
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	count, ok = MatchTicketCount("we are 12")
	assert.True(t, ok)
	assert.Equal(t, 12, count)

	_, ok = MatchTicketCount("a few")
	assert.False(t, ok)

	// Zero is not a bookable count.
	_, ok = MatchTicketCount("0")
	assert.False(t, ok)
}
