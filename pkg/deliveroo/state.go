package deliveroo

import "errors"

// ErrMenuNotFound means the menu page state is missing the menu structure.
// Closed or removed restaurants legitimately serve a page without it, so
// callers must be able to tell this apart from an empty menu.
var ErrMenuNotFound = errors.New("menu structure not found")

// dig walks the decoded state document along a fixed key path.
// A missing key at any depth returns nil instead of failing - the
// normalizers degrade to empty output on structural drift.
func dig(doc map[string]any, keys ...string) any {
	var current any = doc
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current, ok = m[key]
		if !ok {
			return nil
		}
	}

	return current
}

func digMap(doc map[string]any, keys ...string) map[string]any {
	m, _ := dig(doc, keys...).(map[string]any)
	return m
}

func digSlice(doc map[string]any, keys ...string) []any {
	s, _ := dig(doc, keys...).([]any)
	return s
}

func digString(doc map[string]any, keys ...string) string {
	s, _ := dig(doc, keys...).(string)
	return s
}

// stringField reads a flat string field with a fallback. A lookup on a nil
// map is fine, so callers do not need to guard missing block data.
func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}

	return fallback
}

// menuRoot resolves the menu root structure from the page state.
// Unlike the listing path, absence here is reported with ErrMenuNotFound
// rather than degrading to an empty result.
func menuRoot(doc map[string]any) (map[string]any, error) {
	page := digMap(doc, menuPagePath...)

	root := digMap(page, keyMenu, keyMetas, keyRoot)
	if root == nil {
		return nil, ErrMenuNotFound
	}

	return root, nil
}
