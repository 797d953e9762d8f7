package deliveroo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractState(t *testing.T) {
	page := []byte(`<html><head></head><body>
		<div id="root"></div>
		<script id="__NEXT_DATA__" type="application/json">{"props":{"initialState":{"home":{}}}}</script>
	</body></html>`)

	doc, err := ExtractState(page)

	require.NoError(t, err)
	assert.NotNil(t, dig(doc, "props", "initialState", "home"))
}

func TestExtractStateMissingScript(t *testing.T) {
	page := []byte(`<html><body><script type="application/json">{"a":1}</script></body></html>`)

	_, err := ExtractState(page)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExtractStateEmptyScript(t *testing.T) {
	page := []byte(`<html><body><script id="__NEXT_DATA__" type="application/json">  </script></body></html>`)

	_, err := ExtractState(page)

	assert.Error(t, err)
}

func TestExtractStateInvalidJSON(t *testing.T) {
	page := []byte(`<html><body><script id="__NEXT_DATA__">{"broken": </script></body></html>`)

	_, err := ExtractState(page)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestExtractStateNotHTMLAtAll(t *testing.T) {
	// the html parser is forgiving, garbage still parses but has no script
	_, err := ExtractState([]byte("definitely not a page"))

	assert.Error(t, err)
}
