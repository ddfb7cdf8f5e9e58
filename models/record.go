package models

import "time"

// BookingRecord is the persisted form of a completed reservation. It backs
// the ticket download endpoint and is written exactly once, when the dialogue
// reaches the complete step.
type BookingRecord struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Museum    string    `bson:"museum" json:"museum"`
	Date      string    `bson:"date" json:"date"`
	TimeSlot  string    `bson:"timeSlot" json:"timeSlot"`
	Tickets   int       `bson:"tickets" json:"tickets"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
