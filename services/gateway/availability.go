// File: services/gateway/availability.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"musebot/models"
)

// AvailabilityGateway is the boundary to the reservation backend. All three
// calls may fail with a transport error; the dialogue service decides how
// each failure maps onto the conversation.
type AvailabilityGateway interface {
	CheckAvailability(ctx context.Context, query models.AvailabilityQuery) (int, error)
	FindNextSlot(ctx context.Context, query models.AvailabilityQuery) (*string, error)
	CommitBooking(ctx context.Context, sessionID string, query models.AvailabilityQuery, tickets int) (bool, error)
}

// HTTPAvailabilityGateway talks to the availability backend over its JSON API.
type HTTPAvailabilityGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAvailabilityGateway builds a gateway against the given API base URL,
// e.g. "http://localhost:3000/api". The timeout bounds every call; expiry is
// reported as a transport error.
func NewHTTPAvailabilityGateway(baseURL string, timeout time.Duration) *HTTPAvailabilityGateway {
	return &HTTPAvailabilityGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// CheckAvailability returns how many tickets remain for the slot. A missing
// count in the response body reads as zero.
func (g *HTTPAvailabilityGateway) CheckAvailability(ctx context.Context, query models.AvailabilityQuery) (int, error) {
	endpoint := fmt.Sprintf("%s/check-availability?%s", g.baseURL, url.Values{
		"museum":   {query.Museum},
		"date":     {query.Date},
		"timeSlot": {query.TimeSlot},
	}.Encode())

	var result models.AvailabilityResult
	if err := g.getJSON(ctx, endpoint, &result); err != nil {
		return 0, fmt.Errorf("check availability: %w", err)
	}
	return result.AvailableTickets, nil
}

// FindNextSlot returns the next open slot after the requested time, or nil
// when the backend reports none.
func (g *HTTPAvailabilityGateway) FindNextSlot(ctx context.Context, query models.AvailabilityQuery) (*string, error) {
	endpoint := fmt.Sprintf("%s/next-available-slot?%s", g.baseURL, url.Values{
		"museum":    {query.Museum},
		"date":      {query.Date},
		"startTime": {query.TimeSlot},
	}.Encode())

	var result models.NextSlotResult
	if err := g.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("find next slot: %w", err)
	}
	if result.NextAvailableSlot == nil || *result.NextAvailableSlot == "" {
		return nil, nil
	}
	return result.NextAvailableSlot, nil
}

// CommitBooking commits the reservation and reports the backend's verdict.
func (g *HTTPAvailabilityGateway) CommitBooking(ctx context.Context, sessionID string, query models.AvailabilityQuery, tickets int) (bool, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"userId":   sessionID,
		"museum":   query.Museum,
		"date":     query.Date,
		"timeSlot": query.TimeSlot,
		"tickets":  tickets,
	})
	if err != nil {
		return false, fmt.Errorf("marshal booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/book-ticket", bytes.NewBuffer(payload))
	if err != nil {
		return false, fmt.Errorf("build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("book ticket: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("book ticket: backend returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode booking response: %w", err)
	}
	return result.Success, nil
}

func (g *HTTPAvailabilityGateway) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ AvailabilityGateway = (*HTTPAvailabilityGateway)(nil)
