package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/i474232898/knmi-induced/internal/seismic"
)

// DefaultKNMIFeedURL is the public feed of induced earthquakes in the Netherlands.
const DefaultKNMIFeedURL = "https://cdn.knmi.nl/knmi/map/page/seismologie/all_induced.json"

// KNMIProvider implements seismic.Fetcher for the KNMI induced-events feed.
type KNMIProvider struct {
	name    string
	feedURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

// NewKNMIProvider creates a fetcher for feedURL. maxRetries is the number of
// extra attempts made within a single Fetch call.
func NewKNMIProvider(client *http.Client, feedURL string, maxRetries int, logger *logrus.Logger) *KNMIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "knmi",
		MaxRequests: 1,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "knmi",
				"breaker":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("circuit breaker state changed")
		},
	})

	return &KNMIProvider{
		name:    "knmi",
		feedURL: feedURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      maxRetries,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
		logger:  logger,
	}
}

func (p *KNMIProvider) Name() string {
	return p.name
}

// Fetch downloads and decodes the feed. Individual records are not validated here.
func (p *KNMIProvider) Fetch(ctx context.Context) (seismic.RawFeed, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.feedURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	start := time.Now()
	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return seismic.RawFeed{}, err
	}
	defer resp.Body.Close()

	var feed seismic.RawFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return seismic.RawFeed{}, fmt.Errorf("decode knmi feed: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"component": "knmi",
		"events":    len(feed.Events),
		"elapsed":   time.Since(start).String(),
	}).Debug("fetched knmi feed")

	return feed, nil
}
