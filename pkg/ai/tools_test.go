package ai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/deliveroo"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T, conf *config.Config) *ToolFactory {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	monitor := prometheus.New()
	explorer := deliveroo.NewExplorer(conf, monitor, logger)

	return NewToolFactory(explorer, conf, monitor, logger)
}

func TestGetTools(t *testing.T) {
	conf := &config.Config{}
	factory := newTestFactory(t, conf)

	tools := factory.GetTools()

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}

	assert.Equal(t, []string{"current_time", "search_restaurants", "get_restaurant_menu"}, names)
}

func TestSearchToolRejectsInputWithoutURL(t *testing.T) {
	factory := newTestFactory(t, &config.Config{})
	tool := factory.searchRestaurantsTool()

	result, err := tool.Fn(`{"location_url": "milano centro"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "does not contain a valid URL")
}

func TestMenuToolRejectsMalformedInput(t *testing.T) {
	factory := newTestFactory(t, &config.Config{})
	tool := factory.restaurantMenuTool()

	_, err := tool.Fn(`not json`)

	assert.Error(t, err)
}

func TestStaticTools(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static.yml")
	content := []byte(`tools:
  - name: home_address
    description: Returns the delivery address of the household.
    result: Via Roma 1, Milano
  - name: favourite_location
    description: Returns the saved Deliveroo location page.
    result: https://deliveroo.it/it/restaurants/milano/centro
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	factory := newTestFactory(t, &config.Config{StaticToolsPath: path})

	tools := factory.GetTools()
	require.Len(t, tools, 5)

	result, err := tools[3].Fn("")
	require.NoError(t, err)
	assert.Equal(t, "Via Roma 1, Milano", result)
}

func TestStaticToolsMissingFile(t *testing.T) {
	factory := newTestFactory(t, &config.Config{StaticToolsPath: "/does/not/exist.yml"})

	// a broken static config must not break the built-in tools
	tools := factory.GetTools()
	assert.Len(t, tools, 3)
}
