package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"partnerevents/internal/domain"
)

// ProviderHTTP names acknowledgements produced by the HTTP dispatcher.
const ProviderHTTP = "http"

// maxAckBody caps how much of the recipient's response is kept in the ack.
const maxAckBody = 64 << 10

type httpDispatcher struct {
	client    *http.Client
	baseURL   string
	accessKey string
}

// NewHTTPDispatcher returns an InvitationDispatcher that POSTs the payload as JSON to baseURL.
func NewHTTPDispatcher(client *http.Client, baseURL, accessKey string) domain.InvitationDispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDispatcher{client: client, baseURL: baseURL, accessKey: accessKey}
}

func (d *httpDispatcher) Send(ctx context.Context, payload domain.InvitationPayload) (*domain.DispatchAck, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	u, err := url.Parse(d.baseURL)
	if err != nil {
		return nil, fmt.Errorf("build dispatch url: %w", err)
	}
	if d.accessKey != "" {
		q := u.Query()
		q.Set("userKey", d.accessKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxAckBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrDispatchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrDispatchFailed, resp.StatusCode, bytes.TrimSpace(respBody))
	}

	delivered := 0
	for _, c := range payload.Countries {
		delivered += len(c.Recipients())
	}
	return &domain.DispatchAck{
		Provider:   ProviderHTTP,
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
		Delivered:  delivered,
	}, nil
}
