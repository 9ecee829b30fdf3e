package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPClient(server.URL, "test-token", 5*time.Second, zerolog.Nop())
}

func TestVerifyLicense_RecordFound(t *testing.T) {
	var gotPath, gotAuth, gotNumber, gotLastName string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotNumber = r.URL.Query().Get("documentNumber")
		gotLastName = r.URL.Query().Get("lastName")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"licenceNumber":"S1234-56789-60122","status":"active"}}`))
	})

	result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")

	assert.Equal(t, StatusValid, result.Status)
	assert.Equal(t, "/ca/ontario/driver-license", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "S1234-56789-60122", gotNumber)
	assert.Equal(t, "SMITH", gotLastName)
	require.NotNil(t, result.Data)
	assert.Equal(t, "active", result.Data["status"])
}

func TestVerifyLicense_EmptyDataIsInvalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	})

	result := client.VerifyLicense(context.Background(), JurisdictionBC, "1234567", "NGUYEN")
	assert.Equal(t, StatusInvalid, result.Status)
}

func TestVerifyLicense_NotFoundIsInvalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")
	assert.Equal(t, StatusInvalid, result.Status)
}

func TestVerifyLicense_ServerErrors(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"rate limited", http.StatusTooManyRequests},
		{"internal error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			})
			result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")
			assert.Equal(t, StatusError, result.Status)
		})
	}
}

func TestVerifyLicense_TransportErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewHTTPClient(server.URL, "test-token", time.Second, zerolog.Nop())

	result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")
	assert.Equal(t, StatusError, result.Status)
}

func TestVerifyLicense_MalformedBodyIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")
	assert.Equal(t, StatusError, result.Status)
}

func TestVerifyLicense_OmitsEmptyLastName(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":{"status":"active"}}`))
	})

	client.VerifyLicense(context.Background(), JurisdictionBC, "1234567", "")
	assert.NotContains(t, rawQuery, "lastName")
}

func TestDisabled(t *testing.T) {
	var client Client = Disabled{}
	assert.False(t, client.Enabled())
	result := client.VerifyLicense(context.Background(), JurisdictionOntario, "S1234-56789-60122", "SMITH")
	assert.Equal(t, StatusDisabled, result.Status)
}

func TestHTTPClient_Enabled(t *testing.T) {
	assert.True(t, NewHTTPClient("https://verify.example.com", "token", 0, zerolog.Nop()).Enabled())
	assert.False(t, NewHTTPClient("", "token", 0, zerolog.Nop()).Enabled())
	assert.False(t, NewHTTPClient("https://verify.example.com", "", 0, zerolog.Nop()).Enabled())
}
