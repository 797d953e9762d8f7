package deliveroo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExplorer(t *testing.T) *Explorer {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	conf := &config.Config{
		Origin:       "https://deliveroo.it",
		RetryProfile: "strict",
		MaxResults:   20,
		MenuDelay:    0,
	}

	return NewExplorer(conf, prometheus.New(), logger)
}

func statePage(t *testing.T, doc map[string]any) []byte {
	t.Helper()

	blob, err := json.Marshal(doc)
	require.NoError(t, err)

	return []byte(fmt.Sprintf(
		`<html><head></head><body><div id="root"></div><script id="__NEXT_DATA__" type="application/json">%s</script></body></html>`,
		blob,
	))
}

func serveState(t *testing.T, doc map[string]any) *httptest.Server {
	t.Helper()

	page := statePage(t, doc)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(page)
	}))
}

func TestSearchRestaurants(t *testing.T) {
	server := serveState(t, listingDoc(section(
		partnerCard("Pizzeria Roma", "4.5 su 5", "1.2 km", "/menu/123"),
	)))
	defer server.Close()

	result := newTestExplorer(t).SearchRestaurants(server.URL, 0)

	assert.JSONEq(t, `[
		{"name":"Pizzeria Roma","rating":4.5,"distance":"1.2 km","menu_url":"https://deliveroo.it/menu/123"}
	]`, result)
}

func TestSearchRestaurantsEmptyFeed(t *testing.T) {
	server := serveState(t, listingDoc())
	defer server.Close()

	result := newTestExplorer(t).SearchRestaurants(server.URL, 0)

	assert.Contains(t, result, "No restaurants found")
}

func TestSearchRestaurantsFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	result := newTestExplorer(t).SearchRestaurants(server.URL, 0)

	assert.Contains(t, result, "Could not fetch data")
}

func TestSearchRestaurantsBrokenBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>no state here</body></html>`))
	}))
	defer server.Close()

	result := newTestExplorer(t).SearchRestaurants(server.URL, 0)

	assert.Contains(t, result, "Could not fetch data")
}

func TestSearchRestaurantsMinRating(t *testing.T) {
	server := serveState(t, listingDoc(section(
		partnerCard("Low", "3.0 su 5", "1 km", "/menu/1"),
		partnerCard("High", "4.8 su 5", "1 km", "/menu/2"),
	)))
	defer server.Close()

	result := newTestExplorer(t).SearchRestaurants(server.URL, 4.0)

	assert.Contains(t, result, "High")
	assert.NotContains(t, result, "Low")
}

func TestGetMenu(t *testing.T) {
	server := serveState(t, map[string]any{
		"props": map[string]any{
			"initialState": map[string]any{
				"menuPage": map[string]any{
					"menu": map[string]any{
						"metas": map[string]any{
							"root": map[string]any{
								"categories": []any{
									map[string]any{"id": 1.0, "name": "Pizze"},
								},
								"items": []any{
									menuItem(1.0, "Margherita", "Pomodoro, mozzarella", "€6.50"),
								},
							},
						},
					},
				},
			},
		},
	})
	defer server.Close()

	result := newTestExplorer(t).GetMenu(server.URL)

	assert.JSONEq(t, `{"Pizze":[{"item":"Margherita","description":"Pomodoro, mozzarella","price":"€6.50"}]}`, result)
}

func TestGetMenuClosedRestaurant(t *testing.T) {
	server := serveState(t, map[string]any{
		"props": map[string]any{
			"initialState": map[string]any{
				"menuPage": map[string]any{},
			},
		},
	})
	defer server.Close()

	result := newTestExplorer(t).GetMenu(server.URL)

	assert.Contains(t, result, "Menu structure not found")
	assert.Contains(t, result, "closed")
}

func TestGetMenuFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result := newTestExplorer(t).GetMenu(server.URL)

	assert.Equal(t, "Error: Could not load menu.", result)
}
