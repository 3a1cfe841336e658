package catalog

import (
	"strings"
	"testing"
)

func TestDefault_FiveItemsInOrder(t *testing.T) {
	c := Default()
	want := []string{"latte", "macchiato", "black", "espresso", "mocha"}
	if c.Len() != len(want) {
		t.Fatalf("Len: expected %d, got %d", len(want), c.Len())
	}
	for i, id := range want {
		item, ok := c.At(i)
		if !ok {
			t.Fatalf("At(%d): expected ok", i)
		}
		if item.ID != id {
			t.Errorf("At(%d): expected id %q, got %q", i, id, item.ID)
		}
		if item.Name == "" || item.Description == "" || item.Image == "" {
			t.Errorf("At(%d): expected populated fields, got %+v", i, item)
		}
	}
}

func TestDefault_DescriptionsFolded(t *testing.T) {
	item, _ := Default().At(0)
	if strings.Contains(item.Description, "\n") {
		t.Errorf("description should be folded to one line, got %q", item.Description)
	}
	if !strings.HasSuffix(item.Description, `"milk coffee".`) {
		t.Errorf("unexpected latte description: %q", item.Description)
	}
}

func TestCatalog_AtOutOfRange(t *testing.T) {
	c := Default()
	if _, ok := c.At(-1); ok {
		t.Error("At(-1): expected !ok")
	}
	if _, ok := c.At(c.Len()); ok {
		t.Error("At(Len): expected !ok")
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	c := Default()
	if got := c.IndexOf("espresso"); got != 3 {
		t.Errorf("IndexOf(espresso): expected 3, got %d", got)
	}
	if got := c.IndexOf("frappe"); got != -1 {
		t.Errorf("IndexOf(frappe): expected -1, got %d", got)
	}
}

func TestCatalog_ItemsIsCopy(t *testing.T) {
	c := Default()
	items := c.Items()
	items[0].Name = "mutated"
	first, _ := c.At(0)
	if first.Name == "mutated" {
		t.Error("Items should return a copy")
	}
}

func TestCatalog_Head(t *testing.T) {
	c := Default()
	if got := len(c.Head(RecentDiscoveryCount)); got != 4 {
		t.Errorf("Head(4): expected 4 items, got %d", got)
	}
	if got := len(c.Head(99)); got != c.Len() {
		t.Errorf("Head(99): expected %d items, got %d", c.Len(), got)
	}
	if got := len(c.Head(-1)); got != 0 {
		t.Errorf("Head(-1): expected 0 items, got %d", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"empty", "coffees: []", "empty"},
		{"bad yaml", "coffees: [", "decode"},
		{"missing id", "coffees:\n  - name: X\n    bg_color: \"#000000\"\n    accent_color: \"#000000\"\n    text_color: \"#000000\"", "id is required"},
		{"duplicate", "coffees:\n  - {id: a, name: A, bg_color: \"#000000\", accent_color: \"#000000\", text_color: \"#000000\"}\n  - {id: a, name: B, bg_color: \"#000000\", accent_color: \"#000000\", text_color: \"#000000\"}", "duplicate"},
		{"bad color", "coffees:\n  - {id: a, name: A, bg_color: red, accent_color: \"#000000\", text_color: \"#000000\"}", "bg_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMenuCategories(t *testing.T) {
	cats := MenuCategories()
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if len(c.Entries) != 4 {
			t.Errorf("%s: expected 4 entries, got %d", c.Name, len(c.Entries))
		}
	}
	if cats[0].Entries[3].Name != "Coffee Name 4" {
		t.Errorf("unexpected entry name %q", cats[0].Entries[3].Name)
	}
}
