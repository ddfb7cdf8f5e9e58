package dialogue

// Canonical bot reply texts. The dialogue machine only ever speaks through
// these; handlers and gateways never compose user-facing copy.
const (
	promptWelcome = "Welcome to the Museum Information and Reservation System! " +
		"I'm here to help you book your visit or answer any questions you may have. " +
		"Would you like to make a reservation or ask a question?"

	promptMuseumChoices = "Great! Which museum would you like to visit? We have the Louvre, " +
		"Metropolitan Museum of Art, British Museum, and National Gallery available."

	promptOfferEscalation = "It seems like you have a question that might require more detailed information. " +
		"Would you like to switch to our advanced FAQ chatbot? (Yes/No)"

	promptEscalationConnected = "Great! You're now connected to our advanced FAQ chatbot. How can I assist you today?"

	promptResumeBooking = "Alright, let's continue with the reservation process. Which museum would you like to visit?"

	promptMuseumRetry = "I'm sorry, I didn't recognize that museum. Could you please choose from the Louvre, " +
		"Metropolitan Museum of Art, British Museum, or National Gallery?"

	promptDateRetry = "I'm sorry, I couldn't understand that date. Could you please provide it in the format MM/DD/YYYY?"

	promptTimeRetry = "I'm sorry, I couldn't understand that time. Could you please specify a time between 9:00 AM and 4:00 PM?"

	promptTimeOutOfWindow = "That time is outside our visiting hours. Please choose a time between 9:00 AM and 4:00 PM."

	promptAvailabilityError = "I'm sorry, but there was an error checking availability. Please try again later."

	promptNoSlotsToday = "I'm sorry, but there are no available slots for the rest of the day. " +
		"Would you like to try a different date? (Yes/No)"

	promptRetryDate = "I understand. Would you like to try a different date? (Yes/No)"

	promptNewDate = "Alright, let's try a different date. What date would you like to visit? " +
		"(Please use the format MM/DD/YYYY)"

	promptGiveUp = "I'm sorry we couldn't find a suitable time for your visit. Is there anything else I can help you with?"

	promptTicketsRetry = "I'm sorry, I couldn't understand the number of tickets. Could you please provide a number?"

	promptConfirmRetry = "I'm sorry, I didn't understand that. Could you please respond with Yes to confirm " +
		"the booking or No to start over?"

	promptBookingError = "I apologize, but there was an error processing your reservation. Please try again later."

	promptStartOver = "I'm sorry about that. Let's start over. Which museum would you like to visit?"

	promptComplete = "Wonderful! Your reservation is confirmed. You can now download your ticket:"

	promptDefault = "I'm sorry, I'm not sure how to help with that. Would you like to make a new reservation or ask a question?"

	promptEscalationDown = "I'm sorry, but I'm having trouble connecting to our advanced system right now. " +
		"Can I help you with booking a ticket instead?"
)
