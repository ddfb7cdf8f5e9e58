package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"` // empty on the first message; the server assigns one
	Text      string `json:"text"`      // user's typed message
}

// TicketArtifact points the client at the downloadable ticket for a completed
// reservation. The artifact contents themselves are produced by the ticket
// endpoint, not by the dialogue engine.
type TicketArtifact struct {
	SessionID   string `json:"sessionId"`
	DownloadURL string `json:"downloadUrl"`
}

// ReplyEvent is a single bot output: either plain text or a ticket artifact.
// Escalated marks replies produced by the FAQ responder rather than the
// booking flow; the client styles them differently.
type ReplyEvent struct {
	Text      string          `json:"text,omitempty"`
	Artifact  *TicketArtifact `json:"artifact,omitempty"`
	IsBot     bool            `json:"isBot"`
	Escalated bool            `json:"escalated,omitempty"`
}

// BotReply builds a plain booking-flow reply.
func BotReply(text string) ReplyEvent {
	return ReplyEvent{Text: text, IsBot: true}
}

// EscalatedReply builds a reply attributed to the FAQ responder.
func EscalatedReply(text string) ReplyEvent {
	return ReplyEvent{Text: text, IsBot: true, Escalated: true}
}

// ChatResponse is what /api/chat returns to the frontend.
type ChatResponse struct {
	SessionID string       `json:"sessionId"`
	Replies   []ReplyEvent `json:"replies"`
}
