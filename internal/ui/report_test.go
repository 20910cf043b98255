package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mark3labs/homeinfo/internal/config"
	"github.com/mark3labs/homeinfo/internal/lookup"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func detailedInfo() *lookup.HomeInformation {
	return &lookup.HomeInformation{
		Address:  "123 Main St, Springfield, IL 62704",
		Overview: "A charming ranch home.",
		Details: &lookup.PropertyDetails{
			SquareFeet:     floatPtr(1850),
			Bedrooms:       intPtr(3),
			Bathrooms:      floatPtr(2.5),
			EstimatedValue: floatPtr(315000),
			YearBuilt:      intPtr(1978),
		},
		Schools: []lookup.School{
			{Name: "Lincoln Elementary", Distance: 0.4, Rating: 8, Type: "elementary school"},
		},
	}
}

func TestRenderer_TextSummaryIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.FormatText)
	if r.Styled() {
		t.Fatal("a buffer must never get styled output")
	}

	info := &lookup.HomeInformation{
		Address:  "123 Main St, Springfield, IL 62704",
		Overview: "Overview: A 3-bed 2-bath home.",
	}
	if err := r.Render(info); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "Property Overview:\nOverview: A 3-bed 2-bath home.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRenderer_TextDetailed(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf, config.FormatText).Render(detailedInfo()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Property Details:\n",
		"Square Feet: 1,850\n",
		"Bedrooms: 3\n",
		"Bathrooms: 2.5\n",
		"Estimated Value: $315,000.00\n",
		"Year Built: 1978\n",
		"Nearby Schools:\n",
		"Lincoln Elementary (elementary school)\n",
		"  Distance: 0.4 miles\n",
		"  Rating: 8/10\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSquareFeet(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "unknown"},
		{floatPtr(1850), "1,850"},
		{floatPtr(1850.5), "1,850.5"},
		{floatPtr(12400), "12,400"},
	}
	for _, tt := range tests {
		if got := formatSquareFeet(tt.in); got != tt.want {
			t.Errorf("formatSquareFeet(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderer_TextUnknownDetails(t *testing.T) {
	info := &lookup.HomeInformation{
		Address:  "123 Main St, Springfield, IL 62704",
		Overview: "Overview.",
		Details:  &lookup.PropertyDetails{},
	}

	var buf bytes.Buffer
	if err := NewRenderer(&buf, config.FormatText).Render(info); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Estimated Value: unknown\n") {
		t.Errorf("missing unknown value:\n%s", out)
	}
	if !strings.Contains(out, "No nearby schools found.") {
		t.Errorf("missing empty schools note:\n%s", out)
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf, config.FormatJSON).Render(detailedInfo()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded lookup.HomeInformation
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.Overview != "A charming ranch home." {
		t.Errorf("Overview = %q", decoded.Overview)
	}
	if decoded.Details == nil || decoded.Details.YearBuilt == nil || *decoded.Details.YearBuilt != 1978 {
		t.Errorf("Details = %+v", decoded.Details)
	}
	if len(decoded.Schools) != 1 || decoded.Schools[0].Distance != 0.4 {
		t.Errorf("Schools = %+v", decoded.Schools)
	}
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf, config.FormatYAML).Render(detailedInfo()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded lookup.HomeInformation
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if decoded.Address != "123 Main St, Springfield, IL 62704" {
		t.Errorf("Address = %q", decoded.Address)
	}
	if !strings.Contains(buf.String(), "estimated_value: 315000") {
		t.Errorf("unexpected YAML:\n%s", buf.String())
	}
}
