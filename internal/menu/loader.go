package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML catalog. Sections the file leaves out keep the
// built-in data, so a file may only add brands or override a category.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing menu catalog: %w", err)
	}

	catalog := Default()
	for category, items := range file.Categories {
		catalog.Categories[category] = items
	}
	if len(file.Brands) > 0 {
		catalog.Brands = append(file.Brands, catalog.Brands...)
	}
	if len(file.Rules) > 0 {
		catalog.Rules = file.Rules
	}
	for amenity, category := range file.Amenities {
		catalog.Amenities[amenity] = category
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu catalog: %w", err)
	}
	return catalog, nil
}
