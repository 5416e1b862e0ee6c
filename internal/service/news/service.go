package news

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	xlogger "CryptoAPI/pkg/logger"

	"github.com/mmcdole/gofeed"
)

// Service implements a NewsSource aggregating RSS feeds.
type Service struct {
	feeds   []string
	timeout time.Duration
	parser  *gofeed.Parser
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// New creates a news aggregator over the configured feed URLs.
func New(feeds []string, timeout time.Duration, metrics drepo.Metrics, logger *xlogger.Logger) drepo.NewsSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		feeds:   feeds,
		timeout: timeout,
		parser:  gofeed.NewParser(),
		metrics: metrics,
		logger:  logger,
	}
}

// Latest fetches all feeds concurrently and returns entries sorted newest
// first. Failing feeds are skipped; an error is returned only when every
// feed fails.
func (s *Service) Latest(ctx context.Context, limit int) ([]models.NewsItem, error) {
	if len(s.feeds) == 0 {
		return []models.NewsItem{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		items  []models.NewsItem
		failed int
		wg     sync.WaitGroup
	)

	for _, url := range s.feeds {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			feed, err := s.parser.ParseURLWithContext(url, ctx)
			if err != nil {
				s.metrics.RecordError("news_feed")
				s.logger.Warn("news feed failed",
					xlogger.String("feed", url),
					xlogger.Error(err),
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			for _, it := range feed.Items {
				item := models.NewsItem{
					Title:   it.Title,
					Link:    it.Link,
					Source:  feed.Title,
					Summary: it.Description,
				}
				if it.PublishedParsed != nil {
					item.PublishedAt = *it.PublishedParsed
				}
				items = append(items, item)
			}
			mu.Unlock()
		}(url)
	}
	wg.Wait()

	if failed == len(s.feeds) {
		return nil, fmt.Errorf("%w: all %d news feeds failed", drepo.ErrUpstream, failed)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
