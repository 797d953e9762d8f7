package main

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pgiorgini/deliveroo-explorer/pkg/ai"
	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/deliveroo"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/pgiorgini/deliveroo-explorer/pkg/utils"
)

type HandlerRepository struct {
	explorer  *deliveroo.Explorer
	assistant *ai.Ai
	config    *config.Config
	monitor   *prometheus.Monitor
	logger    *logrus.Logger
}

// metricsHandler returns HTTP handler for metrics endpoint
func (hr *HandlerRepository) metricsHandler() http.Handler {
	return promhttp.HandlerFor(
		hr.monitor.Registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          hr.monitor.Registry,
		},
	)
}

func (hr *HandlerRepository) healthHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(utils.GetOkJSON()); err != nil {
			hr.logger.Errorf("Could not write response: %v", err)
		}
	}
}

// chatHandler drives the assistant. The whole conversation comes with
// every request, nothing is stored between calls.
func (hr *HandlerRepository) chatHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		type input struct {
			History []ai.ChatMessage `json:"history"`
		}

		var data input
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Could not read post body", http.StatusBadRequest)
			return
		}

		if len(data.History) == 0 {
			http.Error(w, "History is empty", http.StatusBadRequest)
			return
		}

		response, err := hr.assistant.GetResponse(data.History)
		if err != nil {
			hr.logger.Errorf("Could not get assistant response: %v", err)
			http.Error(w, "Could not get response", http.StatusInternalServerError)
			return
		}

		res, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Could not marshal data to JSON", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err = w.Write(res); err != nil {
			hr.logger.Errorf("Could not write response: %v", err)
		}
	}
}

// searchHandler exposes the listing operation directly, without the model.
func (hr *HandlerRepository) searchHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		type input struct {
			LocationURL string  `json:"location_url"`
			MinRating   float64 `json:"min_rating"`
		}

		var data input
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Could not read post body", http.StatusBadRequest)
			return
		}

		url := utils.ExtractURL(data.LocationURL)
		if url == "" {
			http.Error(w, "location_url is not a valid URL", http.StatusBadRequest)
			return
		}

		minRating := data.MinRating
		if minRating == 0 {
			minRating = hr.config.MinRating
		}

		result := hr.explorer.SearchRestaurants(url, minRating)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(result)); err != nil {
			hr.logger.Errorf("Could not write response: %v", err)
		}
	}
}

// menuHandler exposes the menu operation directly, without the model.
func (hr *HandlerRepository) menuHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		type input struct {
			MenuURL string `json:"menu_url"`
		}

		var data input
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Could not read post body", http.StatusBadRequest)
			return
		}

		url := utils.ExtractURL(data.MenuURL)
		if url == "" {
			http.Error(w, "menu_url is not a valid URL", http.StatusBadRequest)
			return
		}

		result := hr.explorer.GetMenu(url)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(result)); err != nil {
			hr.logger.Errorf("Could not write response: %v", err)
		}
	}
}
