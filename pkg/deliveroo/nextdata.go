package deliveroo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// ExtractState pulls the server-rendered application state out of a page.
// Deliveroo embeds it as JSON in a single well-known script element.
// The document is either decoded completely or not at all.
func ExtractState(page []byte) (map[string]any, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("could not parse page: %w", err)
	}

	el, err := htmlquery.Query(root, fmt.Sprintf("//script[@id='%s']", stateScriptID))
	if err != nil {
		return nil, fmt.Errorf("could not query state script: %w", err)
	}

	if el == nil {
		return nil, fmt.Errorf("state script %s not found", stateScriptID)
	}

	raw := htmlquery.InnerText(el)
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("state script %s is empty", stateScriptID)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("could not decode state blob: %w", err)
	}

	return doc, nil
}
