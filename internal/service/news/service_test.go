package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	drepo "CryptoAPI/internal/domain/repository"
	xlogger "CryptoAPI/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMetrics struct{}

func (noopMetrics) RecordUpstreamRequest(string, string)  {}
func (noopMetrics) RecordUpstreamLatency(string, float64) {}
func (noopMetrics) RecordError(string)                    {}
func (noopMetrics) RecordCacheHit(string)                 {}
func (noopMetrics) RecordCacheMiss(string)                {}
func (noopMetrics) RecordLastPrice(string, float64)       {}
func (noopMetrics) SetStreamSubscribers(int)              {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func rssFeed(title string, items ...string) string {
	body := fmt.Sprintf("<?xml version=\"1.0\" encoding=\"UTF-8\"?><rss version=\"2.0\"><channel><title>%s</title><link>https://example.com</link><description>test</description>", title)
	for _, it := range items {
		body += it
	}
	return body + "</channel></rss>"
}

func rssItem(title, link, pubDate string) string {
	return fmt.Sprintf("<item><title>%s</title><link>%s</link><description>%s summary</description><pubDate>%s</pubDate></item>", title, link, title, pubDate)
}

func TestLatestAggregatesAndSorts(t *testing.T) {
	feedA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssFeed("Feed A",
			rssItem("Old story", "https://a.example/1", "Mon, 02 Jan 2023 10:00:00 GMT"),
		))
	}))
	defer feedA.Close()

	feedB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssFeed("Feed B",
			rssItem("New story", "https://b.example/1", "Tue, 03 Jan 2023 10:00:00 GMT"),
		))
	}))
	defer feedB.Close()

	src := New([]string{feedA.URL, feedB.URL}, 5*time.Second, noopMetrics{}, testLogger(t))

	items, err := src.Latest(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "New story", items[0].Title)
	assert.Equal(t, "Feed B", items[0].Source)
	assert.Equal(t, "Old story", items[1].Title)
	assert.Equal(t, "Feed A", items[1].Source)
	assert.True(t, items[0].PublishedAt.After(items[1].PublishedAt))
}

func TestLatestPartialFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssFeed("Good Feed",
			rssItem("Survivor", "https://g.example/1", "Mon, 02 Jan 2023 10:00:00 GMT"),
		))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	src := New([]string{good.URL, bad.URL}, 5*time.Second, noopMetrics{}, testLogger(t))

	items, err := src.Latest(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Survivor", items[0].Title)
}

func TestLatestAllFeedsFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	src := New([]string{bad.URL}, 5*time.Second, noopMetrics{}, testLogger(t))

	_, err := src.Latest(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, drepo.ErrUpstream))
}

func TestLatestHonorsLimit(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssFeed("Busy Feed",
			rssItem("One", "https://f.example/1", "Mon, 02 Jan 2023 10:00:00 GMT"),
			rssItem("Two", "https://f.example/2", "Tue, 03 Jan 2023 10:00:00 GMT"),
			rssItem("Three", "https://f.example/3", "Wed, 04 Jan 2023 10:00:00 GMT"),
		))
	}))
	defer feed.Close()

	src := New([]string{feed.URL}, 5*time.Second, noopMetrics{}, testLogger(t))

	items, err := src.Latest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Three", items[0].Title)
	assert.Equal(t, "Two", items[1].Title)
}

func TestLatestNoFeedsConfigured(t *testing.T) {
	src := New(nil, time.Second, noopMetrics{}, testLogger(t))

	items, err := src.Latest(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
