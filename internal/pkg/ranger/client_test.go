package ranger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"}, nil)
	require.NoError(t, err)
	return zapLogger
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(models.RangerConfig{
		ServerURL: serverURL,
		Username:  "ranger.one",
		Password:  "secret",
		ClientID:  "das_web_client",
		PageSize:  100,
	}, testLogger(t))
}

// authStub registers the token endpoint on mux and returns a counter of
// issued tokens
func authStub(t *testing.T, mux *http.ServeMux) *int {
	t.Helper()
	issued := 0
	mux.HandleFunc("/oauth2/token/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		if r.FormValue("username") != "ranger.one" || r.FormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.Equal(t, "password", r.FormValue("grant_type"))
		require.Equal(t, "das_web_client", r.FormValue("client_id"))

		issued++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": fmt.Sprintf("token-%d", issued),
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	return &issued
}

func TestAuthenticate(t *testing.T) {
	mux := http.NewServeMux()
	issued := authStub(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server.URL)

	err := client.Authenticate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, *issued)
	assert.Equal(t, "token-1", client.accessToken)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(models.RangerConfig{
		ServerURL: server.URL,
		Username:  "ranger.one",
		Password:  "wrong",
		ClientID:  "das_web_client",
	}, testLogger(t))

	err := client.Authenticate(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetSources(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)
	mux.HandleFunc("/api/v1.0/sources/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		switch r.URL.Query().Get("page") {
		case "1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": "src-1", "name": "collar-7", "provider": "savannah", "is_active": true},
					{"id": "src-2", "name": "collar-9", "provider": "dummy", "is_active": true},
				},
				"next": r.URL.String() + "&page=2",
			})
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]interface{}{},
			})
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sources, err := testClient(t, server.URL).GetSources(context.Background())

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "src-1", sources[0].ID)
	assert.Equal(t, "collar-7", sources[0].Name)
	assert.Equal(t, "dummy", sources[1].Provider)
}

func TestGetSources_DataEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)
	mux.HandleFunc("/api/v1.0/sources/", func(w http.ResponseWriter, r *http.Request) {
		results := []map[string]interface{}{}
		if r.URL.Query().Get("page") == "1" {
			results = append(results, map[string]interface{}{"id": "src-1", "name": "collar-7"})
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"results": results},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sources, err := testClient(t, server.URL).GetSources(context.Background())

	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "src-1", sources[0].ID)
}

func TestGetObservations_FollowsCursorUntilEmptyPage(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)

	var server *httptest.Server
	page := 0
	mux.HandleFunc("/api/v1.0/observations/", func(w http.ResponseWriter, r *http.Request) {
		if page == 0 {
			q := r.URL.Query()
			assert.Equal(t, "true", q.Get("use_cursor"))
			assert.Equal(t, "100", q.Get("page_size"))
			assert.Equal(t, "src-1", q.Get("source_id"))
			assert.NotEmpty(t, q.Get("since"))
			assert.NotEmpty(t, q.Get("until"))
		}
		page++

		results := []map[string]interface{}{}
		next := ""
		if page <= 3 {
			results = append(results, map[string]interface{}{
				"id":          fmt.Sprintf("obs-%d", page),
				"source":      "src-1",
				"recorded_at": time.Date(2026, 8, page, 6, 0, 0, 0, time.UTC).Format(time.RFC3339),
				"location":    map[string]float64{"latitude": -1.2921, "longitude": 36.8219},
				"additional":  map[string]interface{}{"battery": 3.7},
			})
			// Always hand out a cursor; termination must come from the
			// empty fourth page
			next = server.URL + fmt.Sprintf("/api/v1.0/observations/?cursor=%d", page)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"results": results, "next": next},
		})
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	observations, err := testClient(t, server.URL).GetObservations(
		context.Background(), []string{"src-1"}, since, until)

	require.NoError(t, err)
	require.Len(t, observations, 3)
	assert.Equal(t, 4, page, "should stop after the first empty page")
	assert.Equal(t, "obs-1", observations[0].ID)
	assert.Equal(t, "src-1", observations[0].SourceID)
	assert.InDelta(t, -1.2921, observations[0].Location.Latitude, 0.0001)
	assert.InDelta(t, 3.7, observations[0].Additional["battery"], 0.0001)
}

func TestGetObservations_StopsOnEmptyCursor(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)

	page := 0
	mux.HandleFunc("/api/v1.0/observations/", func(w http.ResponseWriter, r *http.Request) {
		page++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"results": []map[string]interface{}{
					{"id": fmt.Sprintf("obs-%d", page), "source": "src-1"},
				},
				"next": "",
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	observations, err := testClient(t, server.URL).GetObservations(
		context.Background(), nil, time.Now().Add(-24*time.Hour), time.Now())

	require.NoError(t, err)
	assert.Len(t, observations, 1)
	assert.Equal(t, 1, page)
}

func TestGet_ReauthenticatesOn401(t *testing.T) {
	mux := http.NewServeMux()
	issued := authStub(t, mux)

	calls := 0
	mux.HandleFunc("/api/v1.0/sources/", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("Authorization") == "Bearer token-1" {
			// First token is treated as expired
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sources, err := testClient(t, server.URL).GetSources(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sources)
	assert.Equal(t, 2, *issued)
	assert.Equal(t, 2, calls)
}

func TestGetPatrols(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)
	mux.HandleFunc("/api/v1.0/activity/patrols/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "done", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"id":            "patrol-1",
					"serial_number": 42,
					"title":         "northern boundary sweep",
					"state":         "done",
					"start_time":    "2026-08-10T06:00:00Z",
				},
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	patrols, err := testClient(t, server.URL).GetPatrols(
		context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		"done")

	require.NoError(t, err)
	require.Len(t, patrols, 1)
	assert.Equal(t, "patrol-1", patrols[0].ID)
	assert.Equal(t, int64(42), patrols[0].Serial)
	assert.Equal(t, "northern boundary sweep", patrols[0].Title)
}

func TestGet_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	authStub(t, mux)
	mux.HandleFunc("/api/v1.0/sources/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := testClient(t, server.URL).GetSources(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
