// Package catalog holds the static lookup tables shared by the material
// pipelines: the keyword-to-category table and the energy factor table.
// Both are parsed once from an embedded YAML document and never modified.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// Category is one entry of the category table.
type Category struct {
	Name     string
	Title    string
	Keywords []string
}

// EnergyFactor maps a material keyword to its energy intensity in MJ per unit.
type EnergyFactor struct {
	Material string
	Factor   float64
}

// Tables is the parsed content of the embedded table document.
type Tables struct {
	Categories          []Category
	EnergyFactors       []EnergyFactor
	DefaultEnergyFactor float64
}

type tablesDoc struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
	DefaultEnergyFactor float64 `yaml:"default_energy_factor"`
	EnergyFactors       []struct {
		Material string  `yaml:"material"`
		Factor   float64 `yaml:"factor"`
	} `yaml:"energy_factors"`
}

var tables = mustParse(tablesYAML)

// Parse decodes a table document. Declaration order is kept because matching
// is first-hit in that order.
func Parse(data []byte) (Tables, error) {
	var doc tablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tables{}, fmt.Errorf("decode tables: %w", err)
	}
	if len(doc.Categories) == 0 {
		return Tables{}, fmt.Errorf("decode tables: no categories")
	}

	caser := cases.Title(language.Und)
	out := Tables{DefaultEnergyFactor: doc.DefaultEnergyFactor}
	seen := make(map[string]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			return Tables{}, fmt.Errorf("decode tables: category without name")
		}
		if seen[name] {
			return Tables{}, fmt.Errorf("decode tables: duplicate category %q", name)
		}
		seen[name] = true
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		out.Categories = append(out.Categories, Category{
			Name:     name,
			Title:    caser.String(name),
			Keywords: keywords,
		})
	}
	for _, f := range doc.EnergyFactors {
		material := strings.ToLower(strings.TrimSpace(f.Material))
		if material == "" {
			continue
		}
		out.EnergyFactors = append(out.EnergyFactors, EnergyFactor{Material: material, Factor: f.Factor})
	}
	return out, nil
}

func mustParse(data []byte) Tables {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories returns the category table in declaration order.
// Keyword slices are shared and must not be modified.
func Categories() []Category {
	return slices.Clone(tables.Categories)
}

// EstimateEnergy returns the factor of the first material keyword contained in
// materialType, or the default factor when none matches.
func EstimateEnergy(materialType string) float64 {
	lower := strings.ToLower(materialType)
	for _, f := range tables.EnergyFactors {
		if strings.Contains(lower, f.Material) {
			return f.Factor
		}
	}
	return tables.DefaultEnergyFactor
}
