package deliveroo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/sirupsen/logrus"
)

// ErrBlocked means the site refused the request outright (403).
// Retrying a blocked request only makes the block worse.
var ErrBlocked = errors.New("request blocked by the site")

// browserHeaders mimic a regular browser session. Requests without them
// are blocked almost immediately.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Accept-Language":           "it-IT,it;q=0.9",
	"Referer":                   "https://deliveroo.it/",
	"Upgrade-Insecure-Requests": "1",
}

// RetryProfile bounds how a Client deals with failing attempts.
type RetryProfile struct {
	Name        string
	MaxAttempts int
	RetryOn     map[int]bool
	Backoff     func(attempt int) time.Duration
	NetworkWait time.Duration
}

// LenientProfile retries rate limits with an increasing wait and
// connection errors with a short fixed one.
func LenientProfile() RetryProfile {
	return RetryProfile{
		Name:        "lenient",
		MaxAttempts: 3,
		RetryOn:     map[int]bool{http.StatusTooManyRequests: true},
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * 5 * time.Second
		},
		NetworkWait: 2 * time.Second,
	}
}

// StrictProfile gives every request exactly one shot.
func StrictProfile() RetryProfile {
	return RetryProfile{
		Name:        "strict",
		MaxAttempts: 1,
		RetryOn:     map[int]bool{},
		Backoff: func(_ int) time.Duration {
			return 0
		},
		NetworkWait: 0,
	}
}

func ProfileByName(name string) RetryProfile {
	if name == "strict" {
		return StrictProfile()
	}

	return LenientProfile()
}

// Client is a single scraping session. It is cheap to build and meant to
// be thrown away after one logical operation.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	profile    RetryProfile
	monitor    *prometheus.Monitor
	logger     *logrus.Logger
}

func NewClient(profile RetryProfile, monitor *prometheus.Monitor, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		headers: browserHeaders,
		profile: profile,
		monitor: monitor,
		logger:  logger,
	}
}

// FetchPage GETs the url and returns the raw body of a 200 response.
// 403 and unexpected statuses fail immediately, rate limits and network
// errors are retried within the profile's attempt budget.
func (c *Client) FetchPage(url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.profile.MaxAttempts; attempt++ {
		c.monitor.FetchAttempts.WithLabelValues().Inc()

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("could not build request: %w", err)
		}

		for key, value := range c.headers {
			req.Header.Set(key, value)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("could not get response: %w", err)
			c.logger.Warnf("connection error for %s: %v", url, err)
			c.monitor.FetchRetries.WithLabelValues().Inc()
			time.Sleep(c.profile.NetworkWait)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("could not read body: %w", err)
			}

			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests && c.profile.RetryOn[http.StatusTooManyRequests]:
			resp.Body.Close()
			lastErr = errors.New("rate limited (429)")
			wait := c.profile.Backoff(attempt)
			c.logger.Warnf("rate limited for %s, waiting %s", url, wait)
			c.monitor.FetchRetries.WithLabelValues().Inc()
			time.Sleep(wait)

		case resp.StatusCode == http.StatusForbidden:
			resp.Body.Close()
			c.monitor.FetchBlocked.WithLabelValues().Inc()
			return nil, ErrBlocked

		default:
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no attempts made")
	}

	return nil, fmt.Errorf("attempts exhausted: %w", lastErr)
}
