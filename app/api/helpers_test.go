package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/money"
	"github.com/zamwe/zamwe-web/app/notify"
	"github.com/zamwe/zamwe-web/app/seed"
	"github.com/zamwe/zamwe-web/app/session"
	"github.com/zamwe/zamwe-web/app/tasks"
)

type testEnv struct {
	router *gin.Engine
	store  *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	store := session.NewStore(catalog, time.Minute, time.Hour)
	scheduler := tasks.NewScheduler(store, tasks.Options{WorkerCount: 1, PaymentDelay: 10 * time.Millisecond})
	scheduler.Start()
	t.Cleanup(scheduler.Stop)

	gate := feed.NewGate(money.Naira())
	handler, err := NewHandler(store, gate, scheduler, Settings{
		BaseURL:    "https://zamwe.test",
		Version:    "test",
		SessionTTL: time.Hour,
		Import: tasks.ImportOptions{
			HTTPClient: http.DefaultClient,
			Parser:     feed.NewParser(feed.NewContentExtractor()),
			UserAgent:  "ZAMWE/test",
			Timeout:    time.Second,
		},
	})
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}

	return &testEnv{router: NewServer(handler), store: store}
}

// client is one browser: it keeps the session cookie between requests.
type client struct {
	t      *testing.T
	env    *testEnv
	cookie *http.Cookie
}

func (e *testEnv) client(t *testing.T) *client {
	return &client{t: t, env: e}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.env.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) postJSON(path string, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) notifications() []notify.Notification {
	c.t.Helper()
	w := c.get("/api/notifications")
	if w.Code != http.StatusOK {
		c.t.Fatalf("Expected 200 from notifications, got %d", w.Code)
	}

	var body struct {
		Notifications []notify.Notification `json:"notifications"`
	}
	decode(c.t, w.Body, &body)
	return body.Notifications
}

func (c *client) updates(query string) feed.View {
	c.t.Helper()
	w := c.get("/api/updates" + query)
	if w.Code != http.StatusOK {
		c.t.Fatalf("Expected 200 from updates, got %d", w.Code)
	}

	var view feed.View
	decode(c.t, w.Body, &view)
	return view
}

func decode(t *testing.T, r io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before timeout")
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

func cardTitles(cards []feed.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Item.Title)
	}
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
