package deliveroo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MenuItem is one dish. Price is always present, the placeholder marks
// items the site lists without a formatted price.
type MenuItem struct {
	Item        string `json:"item,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// Menu groups items by category name. JSON object key order follows the
// order categories were first encountered in the item list, which a plain
// map would lose.
type Menu struct {
	order  []string
	groups map[string][]MenuItem
}

func NewMenu() *Menu {
	return &Menu{
		groups: make(map[string][]MenuItem),
	}
}

func (m *Menu) Add(category string, item MenuItem) {
	if _, ok := m.groups[category]; !ok {
		m.order = append(m.order, category)
	}

	m.groups[category] = append(m.groups[category], item)
}

// Categories returns category names in first-encounter order.
func (m *Menu) Categories() []string {
	return m.order
}

func (m *Menu) Items(category string) []MenuItem {
	return m.groups[category]
}

func (m *Menu) Size() int {
	total := 0
	for _, items := range m.groups {
		total += len(items)
	}

	return total
}

func (m *Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, category := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(category)
		if err != nil {
			return nil, fmt.Errorf("could not marshal category name: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		items, err := json.Marshal(m.groups[category])
		if err != nil {
			return nil, fmt.Errorf("could not marshal category items: %w", err)
		}
		buf.Write(items)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NormalizeMenu groups the menu root's items by resolved category name.
// Items with an unknown or missing category land in the default bucket.
func NormalizeMenu(root map[string]any) *Menu {
	names := make(map[string]string)
	for _, rawCategory := range digSlice(root, keyCategories) {
		category, ok := rawCategory.(map[string]any)
		if !ok {
			continue
		}

		id, ok := category[keyID]
		if !ok {
			continue
		}

		if name, ok := category[keyCategoryName].(string); ok {
			names[categoryKey(id)] = name
		}
	}

	menu := NewMenu()
	for _, rawItem := range digSlice(root, keyItems) {
		item, ok := rawItem.(map[string]any)
		if !ok {
			continue
		}

		category := defaultCategory
		if id, ok := item[keyCategoryID]; ok {
			if name, ok := names[categoryKey(id)]; ok && name != "" {
				category = name
			}
		}

		price := digString(item, keyItemPrice, keyPriceFormatted)
		if price == "" {
			price = missingPrice
		}

		menu.Add(category, MenuItem{
			Item:        stringField(item, keyItemName, ""),
			Description: stringField(item, keyItemDesc, ""),
			Price:       price,
		})
	}

	return menu
}

// categoryKey normalizes category ids for lookup. The site is not
// consistent about numeric versus string ids.
func categoryKey(id any) string {
	return fmt.Sprint(id)
}
