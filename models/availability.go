package models

// AvailabilityQuery identifies one bookable slot.
type AvailabilityQuery struct {
	Museum   string `json:"museum"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// AvailabilityResult is the availability gateway's answer for a slot query.
type AvailabilityResult struct {
	AvailableTickets int `json:"availableTickets"`
}

// NextSlotResult carries the next open slot after a requested time, if any.
type NextSlotResult struct {
	NextAvailableSlot *string `json:"nextAvailableSlot"`
}
