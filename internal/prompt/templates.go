// Package prompt builds the text sent to the language model for a property
// lookup.
package prompt

import (
	"fmt"

	"github.com/mark3labs/homeinfo/internal/address"
)

// System prompts for each kind of request.
const (
	SystemRealEstateExpert = "You are a knowledgeable real estate expert."
	SystemPropertyDatabase = "You are a real estate database. Respond with only the requested format."
	SystemSchoolDatabase   = "You are a school information database. List exactly 3 schools in the exact format specified."
)

const detailsFormat = "Square Feet: [number]\n" +
	"Bedrooms: [number]\n" +
	"Bathrooms: [number]\n" +
	"Estimated Value: [number in USD]\n" +
	"Year Built: [year]"

const schoolFormat = "Name: [school name]\n" +
	"Distance: [number] miles\n" +
	"Rating: [number]/10\n" +
	"Type: [elementary school/middle school/high school]"

// Summary is the single request used by the default lookup: one prompt asking
// for an overview, the key facts and nearby schools.
func Summary(q address.Query) string {
	return NewBuilder(fmt.Sprintf(
		"Describe the property at %s (street: %s; city: %s; state: %s; ZIP code: %s).",
		q, q.Street, q.City, q.State, q.Zip)).
		WithSection("Overview", "Give a brief overview of the property, including notable features and characteristics.").
		WithSection("Property Details", "List what is known about the property:\n"+detailsFormat).
		WithSection("Nearby Schools", "Name up to 3 nearby schools with their distance, rating and type.").
		Build()
}

// Overview asks for a free-text description of the property.
func Overview(q address.Query) string {
	return fmt.Sprintf("Provide a brief overview of the property at %s. Include notable features and characteristics.", q)
}

// Details asks for the property facts in a fixed line format.
func Details(q address.Query) string {
	return NewBuilder(fmt.Sprintf("Provide detailed information about the property at %s in the following format:", q)).
		WithSection("", detailsFormat).
		Build()
}

// Schools asks for three nearby schools, one blank-line separated block each.
func Schools(q address.Query) string {
	return NewBuilder(fmt.Sprintf("List 3 nearby schools for %s. For each school, provide:", q)).
		WithSection("", schoolFormat).
		WithSection("", "Separate schools with a blank line.").
		Build()
}
