package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Museums is the fixed set of bookable museums, in match-priority order.
// Matching is a case-insensitive substring search; the first entry whose name
// appears in the utterance wins.
var Museums = []string{
	"louvre",
	"metropolitan museum of art",
	"british museum",
	"national gallery",
}

var (
	dateRegex   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	timeRegex   = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	ticketRegex = regexp.MustCompile(`\d+`)
)

// YesNo is the three-valued result of a yes/no question.
type YesNo int

const (
	AnswerUnknown YesNo = iota
	AnswerYes
	AnswerNo
)

// MatchMuseum returns the canonical museum name contained in the text, if any.
func MatchMuseum(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, museum := range Museums {
		if strings.Contains(lower, museum) {
			return museum, true
		}
	}
	return "", false
}

// MatchDate returns the first MM/DD/YYYY-shaped token in the text. The check
// is purely syntactic: calendrically impossible dates like 13/45/2024 pass,
// matching the behavior the availability backend expects.
func MatchDate(text string) (string, bool) {
	match := dateRegex.FindString(text)
	return match, match != ""
}

// MatchTime returns the first hour-like token in the text, e.g. "10", "2:30",
// "10:00 am". Normalization and window checks happen in NormalizeTime.
func MatchTime(text string) (string, bool) {
	match := timeRegex.FindString(text)
	return match, match != ""
}

// NormalizeTime converts a raw time token into a 24-hour "HH:MM" slot and
// reports whether it falls inside the bookable window of 9:00 through 16:00.
// Hours given without an am/pm marker are read on the nominal visiting clock:
// 9-12 as-is, 1-4 as afternoon.
func NormalizeTime(token string) (slot string, inWindow bool, err error) {
	parts := timeRegex.FindStringSubmatch(token)
	if parts == nil {
		return "", false, fmt.Errorf("unrecognized time token %q", token)
	}

	hour, err := strconv.Atoi(parts[1])
	if err != nil || hour > 23 {
		return "", false, fmt.Errorf("unrecognized hour in %q", token)
	}
	minutes := 0
	if parts[2] != "" {
		minutes, err = strconv.Atoi(parts[2])
		if err != nil || minutes > 59 {
			return "", false, fmt.Errorf("unrecognized minutes in %q", token)
		}
	}

	switch strings.ToLower(parts[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		// No marker: an hour of 1 through 8 can only mean the afternoon
		// within the visiting window.
		if hour >= 1 && hour <= 8 {
			hour += 12
		}
	}

	slot = fmt.Sprintf("%02d:%02d", hour, minutes)
	inWindow = hour >= 9 && (hour < 16 || (hour == 16 && minutes == 0))
	return slot, inWindow, nil
}

// MatchYesNo classifies the text as yes, no, or unknown. "yes" takes
// precedence when both words appear.
func MatchYesNo(text string) YesNo {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "yes") {
		return AnswerYes
	}
	if strings.Contains(lower, "no") {
		return AnswerNo
	}
	return AnswerUnknown
}

// MatchAffirmative reports whether the text contains any of the informal
// yes-synonyms used when offering the FAQ switch.
func MatchAffirmative(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range []string{"yes", "sure", "ok", "yeah"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func containsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), substr)
}

// MatchTicketCount returns the first run of digits as a positive integer.
// Zero is treated as no match.
func MatchTicketCount(text string) (int, bool) {
	match := ticketRegex.FindString(text)
	if match == "" {
		return 0, false
	}
	count, err := strconv.Atoi(match)
	if err != nil || count <= 0 {
		return 0, false
	}
	return count, true
}
