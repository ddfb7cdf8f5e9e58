package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler the router needs.
type HandlerBundle struct {
	// Chat endpoints.
	HandleChat   gin.HandlerFunc
	ResetSession gin.HandlerFunc

	// Ticket endpoints.
	GetTicket gin.HandlerFunc
}
