package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/dronedash/internal/models"
)

// Menu is the item list an order is drawn from.
type Menu struct {
	Key      string // brand name or category key
	Brand    string
	Category models.MenuCategory
	Items    []models.MenuItem
}

// Classify returns the category of the first rule with a keyword contained
// in any of fields. Matching is case-insensitive. ok is false when no rule
// matches.
func Classify(rules []Rule, fields ...string) (category models.MenuCategory, ok bool) {
	lowered := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			lowered = append(lowered, f)
		}
	}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(kw)
			for _, f := range lowered {
				if strings.Contains(f, kw) {
					return rule.Category, true
				}
			}
		}
	}
	return "", false
}

// MatchBrand returns the first brand whose keyword occurs in the
// restaurant's brand tag or name.
func (c *Catalog) MatchBrand(r *models.Restaurant) (*Brand, bool) {
	terms := []string{strings.ToLower(r.Brand), strings.ToLower(r.Name)}
	for i := range c.Brands {
		for _, kw := range c.Brands[i].Keywords {
			kw = strings.ToLower(kw)
			for _, term := range terms {
				if term != "" && strings.Contains(term, kw) {
					return &c.Brands[i], true
				}
			}
		}
	}
	return nil, false
}

// Classify resolves the cuisine category: keyword rules over name and
// cuisine tag, then the amenity table, then default.
func (c *Catalog) Classify(r *models.Restaurant) models.MenuCategory {
	if category, ok := Classify(c.Rules, r.Name, r.Cuisine); ok {
		return category
	}
	if category, ok := c.Amenities[strings.ToLower(r.Amenity)]; ok {
		return category
	}
	return models.MenuDefault
}

// Resolve picks the menu for a restaurant. A brand match wins over the
// cuisine category; an empty category falls back to default.
func (c *Catalog) Resolve(r *models.Restaurant) Menu {
	if brand, ok := c.MatchBrand(r); ok && len(brand.Items) > 0 {
		return Menu{Key: brand.Name, Brand: brand.Name, Category: c.Classify(r), Items: brand.Items}
	}
	category := c.Classify(r)
	items := c.Categories[category]
	if len(items) == 0 {
		category = models.MenuDefault
		items = c.Categories[models.MenuDefault]
	}
	return Menu{Key: string(category), Category: category, Items: items}
}

// Validate checks that a default menu exists and no category, brand or rule
// is empty.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.Categories[models.MenuDefault]) == 0 {
		errs = append(errs, errors.New("catalog has no default menu"))
	}
	for category, items := range c.Categories {
		if len(items) == 0 {
			errs = append(errs, fmt.Errorf("category %q has no items", category))
		}
		for _, it := range items {
			if it.Name == "" || it.Price < 0 {
				errs = append(errs, fmt.Errorf("category %q has an invalid item %+v", category, it))
			}
		}
	}
	for _, b := range c.Brands {
		if len(b.Keywords) == 0 || len(b.Items) == 0 {
			errs = append(errs, fmt.Errorf("brand %q needs keywords and items", b.Name))
		}
	}
	for i, rule := range c.Rules {
		if _, ok := c.Categories[rule.Category]; !ok {
			errs = append(errs, fmt.Errorf("rule %d points at unknown category %q", i, rule.Category))
		}
	}
	return errors.Join(errs...)
}
