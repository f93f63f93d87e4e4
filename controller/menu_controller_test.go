package controller

import "testing"

func TestMenuItemFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		ok   bool
	}{
		{"full row", []string{"Tuna Tartare", "ahi tuna, avocado", "24.50", "salad", "tuna.jpg"}, true},
		{"no image column", []string{"Lentil Soup", "red lentils", "9.99", "soup"}, true},
		{"missing name", []string{"", "x", "5", "soup"}, false},
		{"bad price", []string{"Soup", "x", "free", "soup"}, false},
		{"zero price", []string{"Soup", "x", "0", "soup"}, false},
		{"short row", []string{"Soup", "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := menuItemFromRow(tt.row)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if item.Name != tt.row[0] || item.Category != tt.row[3] {
				t.Errorf("parsed item = %+v", item)
			}
		})
	}
}

func TestMenuItemFromRowTrimsWhitespace(t *testing.T) {
	item, ok := menuItemFromRow([]string{" Caesar Salad ", " romaine ", " 12.00 ", " salad "})
	if !ok {
		t.Fatal("row should parse")
	}
	if item.Name != "Caesar Salad" || item.Category != "salad" || item.Price != 12.0 {
		t.Errorf("parsed item = %+v", item)
	}
}
