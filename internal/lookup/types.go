package lookup

// School is one nearby school as reported by the model.
type School struct {
	Name     string  `json:"name" yaml:"name"`
	Distance float64 `json:"distance_miles" yaml:"distance_miles"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Type     string  `json:"type" yaml:"type"`
}

// PropertyDetails holds the structured facts about a property. A nil field
// means the model did not supply a usable value.
type PropertyDetails struct {
	SquareFeet     *float64 `json:"square_feet" yaml:"square_feet"`
	Bedrooms       *int     `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms      *float64 `json:"bathrooms" yaml:"bathrooms"`
	EstimatedValue *float64 `json:"estimated_value" yaml:"estimated_value"`
	YearBuilt      *int     `json:"year_built" yaml:"year_built"`
}

// HomeInformation is the result of a lookup. Details and Schools are only
// filled in by a detailed lookup.
type HomeInformation struct {
	Address  string           `json:"address" yaml:"address"`
	Overview string           `json:"overview" yaml:"overview"`
	Details  *PropertyDetails `json:"details,omitempty" yaml:"details,omitempty"`
	Schools  []School         `json:"schools,omitempty" yaml:"schools,omitempty"`
}
