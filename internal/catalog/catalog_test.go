package catalog

import (
	"strings"
	"testing"

	"github.com/HendryAvila/ijin/internal/traits"
)

// --- Embedded data ---

func TestDefault_Loads38Profiles(t *testing.T) {
	c := Default()
	if c.Len() != 38 {
		t.Fatalf("Default().Len() = %d, want 38", c.Len())
	}
}

func TestDefault_Has8Categories(t *testing.T) {
	cats := Default().Categories()
	if len(cats) != 8 {
		t.Fatalf("Categories() returned %d, want 8", len(cats))
	}
	if cats[0] != "革新と変革" {
		t.Errorf("first category = %q, want 革新と変革", cats[0])
	}
}

func TestDefault_EveryCategoryUsed(t *testing.T) {
	used := make(map[string]int)
	for _, p := range Default().Profiles() {
		used[p.Category]++
	}
	for _, cat := range Default().Categories() {
		if used[cat] == 0 {
			t.Errorf("category %q has no profiles", cat)
		}
	}
}

func TestDefault_KnownProfile(t *testing.T) {
	p, ok := Default().Find("トーマス・エジソン")
	if !ok {
		t.Fatal("Find(トーマス・エジソン) not found")
	}
	want := traits.Vector{Execution: 100, Humanity: 50, Style: 70, Charm: 80, Appearance: 50}
	if p.Traits != want {
		t.Errorf("traits = %+v, want %+v", p.Traits, want)
	}
	if p.Label() != "【革新と変革】テクノロジー革新者" {
		t.Errorf("Label() = %q", p.Label())
	}
}

func TestDefault_ProfilesIsACopy(t *testing.T) {
	ps := Default().Profiles()
	ps[0].Name = "mutated"
	if Default().Profiles()[0].Name == "mutated" {
		t.Error("Profiles() must not expose the backing slice")
	}
}

// --- Parse validation ---

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty", "categories: [a]\nprofiles: []\n", "no profiles"},
		{"bad yaml", "profiles: [", "decoding catalog"},
		{
			"unknown category",
			"categories: [a]\nprofiles:\n  - {name: x, category: b, traits: {execution: 50}}\n",
			"unknown category",
		},
		{
			"duplicate name",
			"categories: [a]\nprofiles:\n  - {name: x, category: a}\n  - {name: x, category: a}\n",
			"duplicate profile",
		},
		{
			"out of range",
			"categories: [a]\nprofiles:\n  - {name: x, category: a, traits: {charm: 140}}\n",
			"out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_DerivesCategories(t *testing.T) {
	c, err := New([]Profile{
		{Name: "a", Category: "x"},
		{Name: "b", Category: "y"},
		{Name: "c", Category: "x"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "x" || cats[1] != "y" {
		t.Errorf("Categories() = %v, want [x y]", cats)
	}
}
