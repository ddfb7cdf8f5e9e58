// File: services/gateway/escalation.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EscalationGateway forwards a raw user query to the FAQ responder and
// returns its text reply.
type EscalationGateway interface {
	Ask(ctx context.Context, sessionID, query string) (string, error)
}

// HTTPEscalationGateway forwards queries to the remote FAQ service.
type HTTPEscalationGateway struct {
	endpoint string
	client   *http.Client
}

func NewHTTPEscalationGateway(endpoint string, timeout time.Duration) *HTTPEscalationGateway {
	return &HTTPEscalationGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *HTTPEscalationGateway) Ask(ctx context.Context, sessionID, query string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"ID":    sessionID,
		"query": query,
	})
	if err != nil {
		return "", fmt.Errorf("marshal FAQ request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("build FAQ request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call FAQ service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("FAQ service returned status %d", resp.StatusCode)
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode FAQ response: %w", err)
	}
	return result.Response, nil
}

var _ EscalationGateway = (*HTTPEscalationGateway)(nil)
