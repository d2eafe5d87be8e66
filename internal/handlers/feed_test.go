package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"classifieds/internal/models"
	"classifieds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws/listings", defaultInterval},
		{"interval_string_valid", "/ws/listings?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws/listings?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws/listings?interval=40s", defaultInterval},
		{"interval_ms_too_large", "/ws/listings?interval_ms=40000", defaultInterval},
		{"interval_invalid_string", "/ws/listings?interval=bogus", defaultInterval},
		{"interval_ms_invalid", "/ws/listings?interval_ms=NaN", defaultInterval},
		{"both_present_interval_wins", "/ws/listings?interval=5s&interval_ms=150", 5 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws/listings?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func TestListingFeed_InitialAndPeriodic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	listings := &mockListings{searchResult: []models.Listing{
		{ID: 2, UserID: 1, Username: "alice", Title: "Loft", Location: "Graz", PriceEUR: 900},
		{ID: 1, UserID: 1, Username: "alice", Title: "Flat", Location: "Wien", PriceEUR: 700},
	}}
	s := &service.Service{Listings: listings}

	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws/listings", h.listingFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/listings"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read the initial catalogue push.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "listings" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var out []models.Listing
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("unmarshal listings: %v", err)
	}
	if len(out) != 2 || out[0].ID != 2 || out[0].Username != "alice" {
		t.Fatalf("unexpected listings: %+v", out)
	}

	// Read a subsequent tick.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "listings" {
		t.Fatalf("expected type=listings, got %+v", env)
	}
}

func TestListingFeed_InitialSearchError_Closes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &service.Service{Listings: &mockListings{searchErr: errors.New("boom")}}

	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws/listings", h.listingFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/listings"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server closes right after the initial search fails.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
