package deliveroo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/sirupsen/logrus"
)

// Explorer implements the two operations exposed to the agent. Every
// failure mode comes back as a descriptive string, never as an error -
// the model reads the result either way.
type Explorer struct {
	config  *config.Config
	profile RetryProfile
	monitor *prometheus.Monitor
	logger  *logrus.Logger
}

func NewExplorer(conf *config.Config, monitor *prometheus.Monitor, logger *logrus.Logger) *Explorer {
	return &Explorer{
		config:  conf,
		profile: ProfileByName(conf.RetryProfile),
		monitor: monitor,
		logger:  logger,
	}
}

// SearchRestaurants scrapes a listing page and returns a JSON array of
// restaurant summaries, or a readable message when there is nothing to show.
func (e *Explorer) SearchRestaurants(locationURL string, minRating float64) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error parsing data: %v", r)
		}
	}()

	e.logger.Infof("scanning %s", locationURL)

	doc, err := e.fetchState(locationURL)
	if err != nil {
		e.logger.Warnf("could not fetch listing %s: %v", locationURL, err)
		return "Error: Could not fetch data from Deliveroo. Check the URL."
	}

	results := NormalizeListing(doc, e.config.Origin, SearchOptions{
		MinRating:  minRating,
		MaxResults: e.config.MaxResults,
	})

	if len(results) == 0 {
		return "No restaurants found. The page structure might have changed or the location is empty."
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error parsing data: %v", err)
	}

	return string(out)
}

// GetMenu scrapes a restaurant page and returns its menu grouped by
// category. A courtesy delay is applied before every fetch because the
// agent tends to click faster than a human would.
func (e *Explorer) GetMenu(menuURL string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error parsing menu: %v", r)
		}
	}()

	time.Sleep(e.config.MenuDelay)

	e.logger.Infof("fetching menu %s", menuURL)

	doc, err := e.fetchState(menuURL)
	if err != nil {
		e.logger.Warnf("could not fetch menu %s: %v", menuURL, err)
		return "Error: Could not load menu."
	}

	root, err := menuRoot(doc)
	if err != nil {
		return "Error: Menu structure not found (Restaurant might be closed or page changed)."
	}

	menu := NormalizeMenu(root)

	out, err := json.MarshalIndent(menu, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error parsing menu: %v", err)
	}

	return string(out)
}

// fetchState runs the whole fetch-extract pipeline with a fresh session.
// Sessions are never shared between operations.
func (e *Explorer) fetchState(url string) (map[string]any, error) {
	client := NewClient(e.profile, e.monitor, e.logger)

	body, err := client.FetchPage(url)
	if err != nil {
		return nil, err
	}

	return ExtractState(body)
}
