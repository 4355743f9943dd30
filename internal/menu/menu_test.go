package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisdamba/dronedash/internal/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestClassifyRespectsRuleOrder(t *testing.T) {
	rules := defaultRules()
	cases := []struct {
		name, cuisine string
		want          models.MenuCategory
	}{
		{"Joe's Pizza", "", models.MenuPizza},
		{"Pizza Burger Palace", "", models.MenuPizza}, // pizza outranks burger
		{"Shake Shack", "", models.MenuBurger},
		{"Golden Wok", "", models.MenuChinese},
		{"Nonna's Kitchen", "italian", models.MenuItalian},
		{"Seoul Garden", "korean", models.MenuKorean},
		{"Pho Saigon", "", models.MenuVietnamese},
		{"Harbor House", "seafood;fish", models.MenuSeafood},
		{"Wing Stop", "", models.MenuAmerican},
	}
	for _, c := range cases {
		got, ok := Classify(rules, c.name, c.cuisine)
		if !ok || got != c.want {
			t.Fatalf("Classify(%q, %q) got=%q,%v want=%q", c.name, c.cuisine, got, ok, c.want)
		}
	}
	if got, ok := Classify(rules, "The Blue Door", ""); ok {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestCatalogClassifyFallbacks(t *testing.T) {
	c := Default()
	if got := c.Classify(&models.Restaurant{Name: "Morning Glory", Amenity: "bakery"}); got != models.MenuBakery {
		t.Fatalf("amenity fallback got=%q want=bakery", got)
	}
	if got := c.Classify(&models.Restaurant{Name: "The Blue Door", Amenity: "restaurant"}); got != models.MenuDefault {
		t.Fatalf("fallback got=%q want=default", got)
	}
}

func TestResolveBrandWinsOverCuisine(t *testing.T) {
	c := Default()
	m := c.Resolve(&models.Restaurant{Name: "Taco Bell Cantina", Cuisine: "mexican"})
	if m.Brand != "Taco Bell" {
		t.Fatalf("brand got=%q want=Taco Bell", m.Brand)
	}
	if m.Category != models.MenuMexican {
		t.Fatalf("brand menu should still carry its cuisine, got=%q", m.Category)
	}

	m = c.Resolve(&models.Restaurant{Name: "Corner Store", Brand: "McDonald's"})
	if m.Brand != "McDonald's" {
		t.Fatalf("brand tag match got=%q", m.Brand)
	}
}

func TestResolveEmptyCategoryFallsBackToDefault(t *testing.T) {
	c := Default()
	c.Categories[models.MenuThai] = nil
	m := c.Resolve(&models.Restaurant{Name: "Thai Orchid"})
	if m.Category != models.MenuDefault || len(m.Items) == 0 {
		t.Fatalf("got category=%q items=%d, want default menu", m.Category, len(m.Items))
	}
}

func TestLoadCatalogMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menus.yaml")
	data := []byte(`
brands:
  - name: Joe's Famous
    keywords: ["joe's famous"]
    items:
      - {name: "Famous Slice", price: 4.5, prep: 3}
categories:
  thai:
    - {name: "Khao Soi", price: 15.5, prep: 12}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if m := c.Resolve(&models.Restaurant{Name: "Joe's Famous Pizza"}); m.Brand != "Joe's Famous" || m.Items[0].PrepMinutes != 3 {
		t.Fatalf("file brand not applied: %+v", m)
	}
	if items := c.Categories[models.MenuThai]; len(items) != 1 || items[0].Name != "Khao Soi" {
		t.Fatalf("thai override not applied: %+v", items)
	}
	if len(c.Categories[models.MenuPizza]) == 0 {
		t.Fatalf("untouched categories should keep built-in items")
	}
}

func TestParseCatalogRejectsEmptyCategory(t *testing.T) {
	_, err := ParseCatalog([]byte("categories:\n  default: []\n"))
	if err == nil {
		t.Fatalf("expected validation error for empty default menu")
	}
}
