package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Service struct {
	Name        string `yaml:"name" json:"name"`
	Price       int    `yaml:"price" json:"price"`
	Description string `yaml:"description" json:"description"`
}

type file struct {
	Services []Service `yaml:"services"`
}

var defaults = []Service{
	{Name: "Home Cleaning", Price: 500, Description: "Full house dusting, mopping and bathroom cleaning"},
	{Name: "Plumbing", Price: 400, Description: "Leak repair, tap and pipe fitting"},
	{Name: "Electrical Repair", Price: 450, Description: "Wiring, switches and fixture installation"},
	{Name: "AC Servicing", Price: 800, Description: "Filter cleaning and gas top-up check"},
	{Name: "Pest Control", Price: 1200, Description: "Treatment for cockroaches, ants and termites"},
	{Name: "Painting", Price: 2500, Description: "Interior wall painting per room"},
}

func Defaults() []Service {
	out := make([]Service, len(defaults))
	copy(out, defaults)
	return out
}

// Load reads the catalog from a YAML file. An empty path yields the
// built-in services.
func Load(path string) ([]Service, error) {
	if path == "" {
		return Defaults(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]Service, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for i, s := range f.Services {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("catalog: service %d has no name", i)
		}
		if s.Price <= 0 {
			return nil, fmt.Errorf("catalog: service %q has no price", s.Name)
		}
	}
	return f.Services, nil
}
