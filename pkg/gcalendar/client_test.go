package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smart-task-bot/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient_Credentials(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil || !strings.Contains(err.Error(), "gcal-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		defer os.Remove(tokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		defer os.Remove(tokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("From file", func(t *testing.T) {
		credsPath := filepath.Join(dir, "creds.json")
		os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath, tokenPath); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "missing.json"), tokenPath); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestOAuthConfigFromJSON(t *testing.T) {
	cfg, err := gcalendar.OAuthConfigFromJSON([]byte(mockCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientID != "test-client-id.apps.googleusercontent.com" || cfg.RedirectURL != "http://localhost" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := gcalendar.OAuthConfigFromJSON([]byte(`{"installed": {}}`)); err == nil {
		t.Error("expected error for missing client id")
	}
}

func TestCreateEvent(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-123", "summary": "Купить хлеб", "htmlLink": "https://calendar.google.com/event-uri"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:      "Купить хлеб",
		StartTime:    start,
		Timezone:     "Europe/Amsterdam",
		PopupAtStart: true,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" || event.ID != "event-123" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.EndTime.Equal(start.Add(gcalendar.DefaultEventDuration)) {
		t.Errorf("EndTime = %v", event.EndTime)
	}

	reminders, ok := body["reminders"].(map[string]interface{})
	if !ok || reminders["useDefault"] != false {
		t.Errorf("expected custom reminders, got %v", body["reminders"])
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x", StartTime: time.Now()})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}
