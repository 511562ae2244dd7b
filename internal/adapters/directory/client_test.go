package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerevents/internal/domain"
)

func TestHTTPDirectory_Fetch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []domain.PartnerRecord
		errIs   error
		wantErr bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"partners":[
				{"firstName":"Darin","email":"darin@example.com","country":"United States","availableDates":["2017-05-03","2017-05-06"]},
				{"email":"crystal@example.com","country":"Ireland","availableDates":[]}
			]}`,
			want: []domain.PartnerRecord{
				{Email: "darin@example.com", Country: "United States", AvailableDates: []string{"2017-05-03", "2017-05-06"}},
				{Email: "crystal@example.com", Country: "Ireland", AvailableDates: []string{}},
			},
		},
		{
			name:    "empty partner list",
			status:  http.StatusOK,
			body:    `{"partners":[]}`,
			wantErr: true,
			errIs:   domain.ErrNoPartners,
		},
		{
			name:    "missing partners key",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: true,
			errIs:   domain.ErrNoPartners,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: true,
			errIs:   domain.ErrDirectoryUnavailable,
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"partners":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotKey string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotKey = r.URL.Query().Get("userKey")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			dir := NewHTTPDirectory(srv.Client(), srv.URL+"/api/partners", "key-123")
			got, err := dir.Fetch(context.Background())

			assert.Equal(t, "key-123", gotKey)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.True(t, errors.Is(err, tt.errIs), "got %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPDirectory_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPDirectory(nil, url, "").Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryUnavailable))
}

func TestWithUserKey(t *testing.T) {
	got, err := withUserKey("https://example.com/api/partners?page=1", "k")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/partners?page=1&userKey=k", got)

	got, err = withUserKey("https://example.com/api/partners", "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/partners", got)
}
