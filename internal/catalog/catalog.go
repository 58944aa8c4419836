// Package catalog holds the reference profiles users are matched against.
//
// The catalog is compiled into the binary (catalog.yaml) and parsed once on
// first use. It is never mutated afterwards: accessors hand out copies.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/HendryAvila/ijin/internal/traits"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Profile is a named reference figure with a fixed trait vector.
type Profile struct {
	Name        string        `json:"name" yaml:"name"`
	Category    string        `json:"category" yaml:"category"`
	SubCategory string        `json:"subCategory" yaml:"sub_category"`
	Traits      traits.Vector `json:"traits" yaml:"traits"`
	Description string        `json:"description" yaml:"description"`
}

// Label formats the category pair the way reports display it,
// e.g. 【革新と変革】テクノロジー革新者.
func (p Profile) Label() string {
	return fmt.Sprintf("【%s】%s", p.Category, p.SubCategory)
}

// Catalog is the ordered, read-only list of reference profiles.
type Catalog struct {
	categories []string
	profiles   []Profile
}

type catalogFile struct {
	Categories []string  `yaml:"categories"`
	Profiles   []Profile `yaml:"profiles"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded data is
// malformed, which can only happen with a broken build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c := &Catalog{categories: f.Categories, profiles: f.Profiles}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// New builds a catalog from in-memory profiles. Categories are derived in
// first-seen order. Mostly useful in tests.
func New(profiles []Profile) (*Catalog, error) {
	var cats []string
	seen := make(map[string]bool)
	for _, p := range profiles {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	c := &Catalog{categories: cats, profiles: append([]Profile(nil), profiles...)}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.profiles) == 0 {
		return fmt.Errorf("catalog has no profiles")
	}
	known := make(map[string]bool, len(c.categories))
	for _, cat := range c.categories {
		if known[cat] {
			return fmt.Errorf("duplicate category %q", cat)
		}
		known[cat] = true
	}
	names := make(map[string]bool, len(c.profiles))
	for i, p := range c.profiles {
		if p.Name == "" {
			return fmt.Errorf("profile %d has no name", i)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		names[p.Name] = true
		if !known[p.Category] {
			return fmt.Errorf("profile %q: unknown category %q", p.Name, p.Category)
		}
		for _, d := range traits.Dimensions() {
			if v := p.Traits.Get(d); v < 0 || v > traits.Max {
				return fmt.Errorf("profile %q: %s = %d out of range", p.Name, d, v)
			}
		}
	}
	return nil
}

// Profiles returns a copy of all profiles in catalog order.
func (c *Catalog) Profiles() []Profile {
	return append([]Profile(nil), c.profiles...)
}

// Categories returns the category names in declaration order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Find looks up a profile by name.
func (c *Catalog) Find(name string) (Profile, bool) {
	for _, p := range c.profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
