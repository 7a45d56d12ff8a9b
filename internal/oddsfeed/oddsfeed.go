package oddsfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/service/oddsservice"
	"github.com/GlebRadaev/hyperacing/pkg/clients"
	"go.uber.org/zap"
)

//go:generate mockgen -source=oddsfeed.go -destination=mock_oddsfeed.go -package=oddsfeed

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrNoOdds = errors.New("odds feed has no table yet")

type Publisher interface {
	PublishOdds(ctx context.Context, table domain.OddsTable) (*domain.Odds, error)
}

type Metrics interface {
	FeedFetched(result string)
}

// Service polls an external odds feed and publishes what it serves as the
// current odds table.
type Service struct {
	url            string
	client         clients.HTTPClientI
	publisher      Publisher
	metrics        Metrics
	updateInterval time.Duration
	retryInterval  time.Duration
}

func New(url string, interval time.Duration, client clients.HTTPClientI, publisher Publisher, metrics Metrics) *Service {
	return &Service{
		url:            url,
		client:         client,
		publisher:      publisher,
		metrics:        metrics,
		updateInterval: interval,
		retryInterval:  retryInterval,
	}
}

// Run polls once immediately and then every update interval until ctx is
// done.
func (s *Service) Run(ctx context.Context) error {
	zap.L().Info("Odds feed poller started", zap.String("url", s.url), zap.Duration("interval", s.updateInterval))
	s.poll(ctx)

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping odds feed poller")
			return nil
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Service) poll(ctx context.Context) {
	err := s.Poll(ctx)
	switch {
	case err == nil:
		s.metrics.FeedFetched("ok")
	case errors.Is(err, ErrNoOdds):
		s.metrics.FeedFetched("empty")
	case errors.Is(err, context.Canceled):
	default:
		s.metrics.FeedFetched("error")
		zap.L().Error("Failed to poll odds feed", zap.Error(err))
	}
}

// Poll fetches the feed once and publishes the table it returns.
func (s *Service) Poll(ctx context.Context) error {
	body, contentType, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	table, err := parseTable(body, contentType)
	if err != nil {
		return fmt.Errorf("failed to parse odds feed: %w", err)
	}

	if _, err := s.publisher.PublishOdds(ctx, table); err != nil {
		return fmt.Errorf("failed to publish odds: %w", err)
	}
	return nil
}

func (s *Service) fetch(ctx context.Context) ([]byte, string, error) {
	headers := http.Header{"Accept": []string{"application/json, text/csv"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(ctx, s.url, headers)
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", ctx.Err()
			}
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return nil, "", err
				}
				continue
			}
			return nil, "", fmt.Errorf("failed to fetch odds feed after %d retries: %w", maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return respBody, respHeaders.Get("Content-Type"), nil
		case http.StatusNoContent:
			return nil, "", ErrNoOdds
		case http.StatusTooManyRequests:
			if attempt == maxRetries {
				return nil, "", fmt.Errorf("odds feed still rate limited after %d retries", maxRetries)
			}
			if err := s.wait(ctx, s.retryAfter(respHeaders, attempt)); err != nil {
				return nil, "", err
			}
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("url", s.url))
			return nil, "", fmt.Errorf("unexpected status code %d", statusCode)
		}
	}
	return nil, "", fmt.Errorf("failed to fetch odds feed after %d retries", maxRetries)
}

func (s *Service) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return retryAfter
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseTable(body []byte, contentType string) (domain.OddsTable, error) {
	if strings.HasPrefix(contentType, "text/csv") {
		return oddsservice.ParseOddsCSV(bytes.NewReader(body))
	}
	var table domain.OddsTable
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, err
	}
	return table, nil
}
