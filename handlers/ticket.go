package handlers

import (
	"errors"
	"net/http"

	recordsRepo "musebot/database/repository/records"
	"musebot/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// TicketHandler serves the booking record behind a ticket download link.
type TicketHandler struct {
	records recordsRepo.BookingRecordRepository
}

func NewTicketHandler(records recordsRepo.BookingRecordRepository) *TicketHandler {
	return &TicketHandler{records: records}
}

// GetTicket returns the completed reservation for a session. The visual
// ticket (PDF/QR) is rendered client-side from this payload.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	sessionID := c.Param("sessionID")

	record, err := h.records.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Ticket not found", "no completed reservation for this session")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load ticket", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}
