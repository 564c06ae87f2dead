package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Endpoints lists the upstream candidates for each logical resource, in priority order.
// ProductDetail paths carry an {id} placeholder.
type Endpoints struct {
	Products         []string `yaml:"products"`
	ProductDetail    []string `yaml:"product_detail"`
	Categories       []string `yaml:"categories"`
	FeaturedProducts []string `yaml:"featured_products"`
	Users            []string `yaml:"users"`
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Products:         []string{"/client/v1/products"},
		ProductDetail:    []string{"/client/v1/productDetails/{id}"},
		Categories:       []string{"/client/v1/categories"},
		FeaturedProducts: []string{"/client/v1/featureProducts"},
		Users:            []string{"/clients", "/users", "/admin/users"},
	}
}

// LoadEndpoints reads an optional YAML candidates file. Resources missing from the
// file keep their default candidates.
func LoadEndpoints(path string) (Endpoints, error) {
	endpoints := DefaultEndpoints()
	if path == "" {
		return endpoints, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return endpoints, fmt.Errorf("reading endpoints file %s: %w", path, err)
	}

	var fromFile Endpoints
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return endpoints, fmt.Errorf("parsing endpoints file %s: %w", path, err)
	}

	endpoints.Products = override(endpoints.Products, fromFile.Products)
	endpoints.ProductDetail = override(endpoints.ProductDetail, fromFile.ProductDetail)
	endpoints.Categories = override(endpoints.Categories, fromFile.Categories)
	endpoints.FeaturedProducts = override(endpoints.FeaturedProducts, fromFile.FeaturedProducts)
	endpoints.Users = override(endpoints.Users, fromFile.Users)

	return endpoints, nil
}

func override(defaults, candidates []string) []string {
	if len(candidates) == 0 {
		return defaults
	}
	return candidates
}
