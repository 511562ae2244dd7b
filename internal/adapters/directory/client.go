package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"partnerevents/internal/domain"
)

type partnersResponse struct {
	Partners []domain.PartnerRecord `json:"partners"`
}

type httpDirectory struct {
	client    *http.Client
	baseURL   string
	accessKey string
}

// NewHTTPDirectory returns a PartnerDirectory that reads the roster from baseURL.
// accessKey is sent as the userKey query parameter.
func NewHTTPDirectory(client *http.Client, baseURL, accessKey string) domain.PartnerDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDirectory{client: client, baseURL: baseURL, accessKey: accessKey}
}

func (d *httpDirectory) Fetch(ctx context.Context) ([]domain.PartnerRecord, error) {
	u, err := withUserKey(d.baseURL, d.accessKey)
	if err != nil {
		return nil, fmt.Errorf("build directory url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var data partnersResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode partner list: %w", err)
	}
	if len(data.Partners) == 0 {
		return nil, domain.ErrNoPartners
	}
	return data.Partners, nil
}

func withUserKey(raw, key string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if key != "" {
		q := u.Query()
		q.Set("userKey", key)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
