package deliveroo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDig(t *testing.T) {
	doc := map[string]any{
		"props": map[string]any{
			"initialState": map[string]any{
				"home": map[string]any{
					"feed": []any{"a", "b"},
				},
			},
		},
	}

	tests := []struct {
		name     string
		keys     []string
		expected any
	}{
		{"full path", []string{"props", "initialState", "home", "feed"}, []any{"a", "b"}},
		{"missing leaf", []string{"props", "initialState", "home", "nope"}, nil},
		{"missing intermediate", []string{"props", "nope", "home"}, nil},
		{"through non-map", []string{"props", "initialState", "home", "feed", "deeper"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dig(doc, tt.keys...))
		})
	}
}

func TestDigHelpers(t *testing.T) {
	doc := map[string]any{
		"list": []any{1.0},
		"text": "hello",
	}

	assert.Equal(t, []any{1.0}, digSlice(doc, "list"))
	assert.Nil(t, digSlice(doc, "text"))
	assert.Equal(t, "hello", digString(doc, "text"))
	assert.Equal(t, "", digString(doc, "list"))
	assert.Nil(t, digMap(doc, "missing"))
}

func TestMenuRoot(t *testing.T) {
	doc := map[string]any{
		"props": map[string]any{
			"initialState": map[string]any{
				"menuPage": map[string]any{
					"menu": map[string]any{
						"metas": map[string]any{
							"root": map[string]any{
								"items": []any{},
							},
						},
					},
				},
			},
		},
	}

	root, err := menuRoot(doc)

	require.NoError(t, err)
	assert.NotNil(t, root["items"])
}

func TestMenuRootMissing(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"empty document", map[string]any{}},
		{"menu page without menu", map[string]any{
			"props": map[string]any{
				"initialState": map[string]any{
					"menuPage": map[string]any{},
				},
			},
		}},
		{"menu without metas root", map[string]any{
			"props": map[string]any{
				"initialState": map[string]any{
					"menuPage": map[string]any{
						"menu": map[string]any{},
					},
				},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := menuRoot(tt.doc)
			assert.ErrorIs(t, err, ErrMenuNotFound)
		})
	}
}
