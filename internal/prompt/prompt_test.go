package prompt

import (
	"strings"
	"testing"

	"github.com/mark3labs/homeinfo/internal/address"
)

func TestBuilder_BaseOnly(t *testing.T) {
	result := NewBuilder("Describe the house.").Build()
	if result != "Describe the house." {
		t.Errorf("Build = %q, want base only", result)
	}
}

func TestBuilder_EmptyBase(t *testing.T) {
	if result := NewBuilder("").Build(); result != "" {
		t.Errorf("Build = %q, want empty string", result)
	}
}

func TestBuilder_WithSection(t *testing.T) {
	result := NewBuilder("Base.").
		WithSection("Overview", "Some context.").
		Build()
	if result != "Base.\n\n# Overview\n\nSome context." {
		t.Errorf("Build = %q", result)
	}
}

func TestBuilder_UnnamedAndEmptySections(t *testing.T) {
	result := NewBuilder("Base.").
		WithSection("", "Plain block.").
		WithSection("Skipped", "").
		Build()
	if result != "Base.\n\nPlain block." {
		t.Errorf("Build = %q", result)
	}
}

func TestPromptsContainAddressVerbatim(t *testing.T) {
	inputs := []address.Query{
		{Street: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"},
		{Street: "1600 Pennsylvania Avenue NW", City: "Washington", State: "DC", Zip: "20500-0003"},
		{Street: "", City: "", State: "", Zip: ""},
	}

	builders := map[string]func(address.Query) string{
		"summary":  Summary,
		"overview": Overview,
		"details":  Details,
		"schools":  Schools,
	}

	for name, build := range builders {
		for _, q := range inputs {
			p := build(q)
			for _, field := range []string{q.Street, q.City, q.State, q.Zip} {
				if !strings.Contains(p, field) {
					t.Errorf("%s prompt for %v is missing %q", name, q, field)
				}
			}
		}
	}
}

func TestSummary_AsksForAllSections(t *testing.T) {
	p := Summary(address.Query{Street: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"})
	for _, want := range []string{"# Overview", "# Property Details", "# Nearby Schools", "Square Feet:"} {
		if !strings.Contains(p, want) {
			t.Errorf("summary prompt missing %q", want)
		}
	}
}

func TestDetailsAndSchoolsFormats(t *testing.T) {
	q := address.Query{Street: "123 Main St", City: "Springfield", State: "IL", Zip: "62704"}

	if !strings.Contains(Details(q), "Year Built: [year]") {
		t.Error("details prompt missing format lines")
	}
	if !strings.Contains(Schools(q), "Type: [elementary school/middle school/high school]") {
		t.Error("schools prompt missing format lines")
	}
}
