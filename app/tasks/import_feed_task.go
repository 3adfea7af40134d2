package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/notify"
	"github.com/zamwe/zamwe-web/app/session"
)

// ImportFeedTask adds the entries of an RSS or Atom document to a session's
// updates. The document is either given inline or fetched from URL.
type ImportFeedTask struct {
	Task
	URL        string
	data       []byte
	session    *session.Session
	httpClient *http.Client
	parser     *feed.Parser
	userAgent  string
	timeout    time.Duration
}

type ImportOptions struct {
	HTTPClient *http.Client
	Parser     *feed.Parser
	UserAgent  string
	Timeout    time.Duration
}

func NewImportFeedTask(sess *session.Session, url string, data []byte, opts ImportOptions) *ImportFeedTask {
	subject := url
	if subject == "" {
		subject = "upload"
	}

	return &ImportFeedTask{
		Task:       NewTask(TaskTypeImportFeed, subject),
		URL:        url,
		data:       data,
		session:    sess,
		httpClient: opts.HTTPClient,
		parser:     opts.Parser,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
	}
}

func (t *ImportFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := t.run(ctx)
	if err != nil && !t.CanRetry() {
		t.session.Notifications().Emit("Import Failed",
			"The feed could not be imported. Please check the address and try again.",
			notify.SeverityDestructive)
	}
	return err
}

func (t *ImportFeedTask) run(ctx context.Context) error {
	data := t.data
	if t.URL != "" {
		fetched, err := t.fetchFeed(ctx, t.URL)
		if err != nil {
			return fmt.Errorf("failed to fetch feed: %w", err)
		}
		data = fetched
	}

	items, err := t.parser.Run(data)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	existing := make(map[string]bool)
	for _, item := range t.session.Items() {
		existing[strings.ToLower(item.Title)] = true
	}

	duplicateCount := 0
	newCount := 0
	invalidCount := 0

	// Oldest first so the newest entry ends up on top.
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		key := strings.ToLower(item.Title)
		if existing[key] {
			duplicateCount++
			continue
		}

		if _, err := t.session.AddItem(item); err != nil {
			slog.Warn("Skipping imported item", "title", item.Title, "error", err)
			invalidCount++
			continue
		}
		existing[key] = true
		newCount++
	}

	t.session.Notifications().Emit("Import Complete",
		fmt.Sprintf("Imported %d updates (%d already present).", newCount, duplicateCount),
		notify.SeverityNormal)

	slog.Info("Task completed",
		"type", "ImportFeed",
		"subject", t.Subject,
		"duration", t.GetDuration(),
		"total", len(items),
		"duplicates", duplicateCount,
		"invalid", invalidCount,
		"new", newCount)

	return nil
}

func (t *ImportFeedTask) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength > feed.MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes", feed.ErrDocumentTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, feed.MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > feed.MaxDocumentSize {
		return nil, fmt.Errorf("%w: more than %d bytes", feed.ErrDocumentTooLarge, feed.MaxDocumentSize)
	}

	return data, nil
}
