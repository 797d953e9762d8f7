package ai

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/deliveroo"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/pgiorgini/deliveroo-explorer/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ToolFactory builds the tools the model can call. The scraping tools
// always answer with a string, even on failure - the model handles a
// readable error better than a hard tool fault.
type ToolFactory struct {
	explorer *deliveroo.Explorer
	config   *config.Config
	monitor  *prometheus.Monitor
	logger   *logrus.Logger
}

func NewToolFactory(e *deliveroo.Explorer, conf *config.Config, m *prometheus.Monitor, l *logrus.Logger) *ToolFactory {
	return &ToolFactory{
		explorer: e,
		config:   conf,
		monitor:  m,
		logger:   l,
	}
}

func (f *ToolFactory) GetTools() []Tool {
	tools := []Tool{
		f.currentTimeTool(),
		f.searchRestaurantsTool(),
		f.restaurantMenuTool(),
	}

	if f.config.StaticToolsPath != "" {
		static, err := f.staticTools()
		if err != nil {
			f.logger.Warnf("could not load static tools: %v", err)
		} else {
			tools = append(tools, static...)
		}
	}

	return tools
}

func (f *ToolFactory) currentTimeTool() Tool {
	return Tool{
		Name:        "current_time",
		Description: "Provides current day, date and time in Europe/Rome timezone.",
		Fn: func(_ string) (string, error) {
			now := time.Now()
			return fmt.Sprintf("%s, %s", utils.FormatWeekday(now), utils.FormatDate(now)), nil
		},
	}
}

func (f *ToolFactory) searchRestaurantsTool() Tool {
	return Tool{
		Name:        "search_restaurants",
		Description: "Scrapes a Deliveroo listing page and returns the available restaurants as JSON: name, rating, distance and menu_url. menu_url can be passed to get_restaurant_menu.",
		HasSchema:   true,
		Schema: Property{
			Type: SchemaTypeObject,
			Properties: map[string]Property{
				"location_url": {
					Type:        SchemaTypeString,
					Description: "The full URL of the Deliveroo category or location page",
				},
				"min_rating": {
					Type:        SchemaTypeNumber,
					Description: "Filter out restaurants below this rating (default 0)",
				},
			},
			Required: []string{"location_url"},
		},
		Fn: func(input string) (string, error) {
			f.monitor.ToolCalls.WithLabelValues("search_restaurants").Inc()

			var data struct {
				LocationURL string  `json:"location_url"`
				MinRating   float64 `json:"min_rating"`
			}

			if err := json.Unmarshal([]byte(input), &data); err != nil {
				return "", fmt.Errorf("error unmarshalling input: %w", err)
			}

			url := utils.ExtractURL(data.LocationURL)
			if url == "" {
				return "Error: location_url does not contain a valid URL.", nil
			}

			minRating := data.MinRating
			if minRating == 0 {
				minRating = f.config.MinRating
			}

			return f.explorer.SearchRestaurants(url, minRating), nil
		},
	}
}

func (f *ToolFactory) restaurantMenuTool() Tool {
	return Tool{
		Name:        "get_restaurant_menu",
		Description: "Fetches the menu of a single restaurant as JSON grouped by category. Use the menu_url returned by search_restaurants.",
		HasSchema:   true,
		Schema: Property{
			Type: SchemaTypeObject,
			Properties: map[string]Property{
				"menu_url": {
					Type:        SchemaTypeString,
					Description: "The full URL of the restaurant page",
				},
			},
			Required: []string{"menu_url"},
		},
		Fn: func(input string) (string, error) {
			f.monitor.ToolCalls.WithLabelValues("get_restaurant_menu").Inc()

			var data struct {
				MenuURL string `json:"menu_url"`
			}

			if err := json.Unmarshal([]byte(input), &data); err != nil {
				return "", fmt.Errorf("error unmarshalling input: %w", err)
			}

			url := utils.ExtractURL(data.MenuURL)
			if url == "" {
				return "Error: menu_url does not contain a valid URL.", nil
			}

			return f.explorer.GetMenu(url), nil
		},
	}
}
