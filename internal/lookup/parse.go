package lookup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	squareFeetPattern     = regexp.MustCompile(`(?i)Square\s*Feet:?\s*(\d[\d,]*)`)
	bedroomsPattern       = regexp.MustCompile(`(?i)Bedrooms?:?\s*(\d+)`)
	bathroomsPattern      = regexp.MustCompile(`(?i)Bathrooms?:?\s*(\d+\.?\d*)`)
	estimatedValuePattern = regexp.MustCompile(`(?i)Estimated\s*Value:?\s*\$?\s*(\d[\d,]*)`)
	yearBuiltPattern      = regexp.MustCompile(`(?i)Year\s*Built:?\s*(\d{4})`)

	schoolNamePattern     = regexp.MustCompile(`(?i)Name:\s*([^\n]+)`)
	schoolDistancePattern = regexp.MustCompile(`(?i)Distance:\s*(\d+\.?\d*)`)
	schoolRatingPattern   = regexp.MustCompile(`(?i)Rating:\s*(\d+\.?\d*)`)
	schoolTypePattern     = regexp.MustCompile(`(?i)Type:\s*(elementary school|middle school|high school)`)

	blankLines = regexp.MustCompile(`\n\s*\n`)
)

// ParseDetails extracts property facts from a details response. The five
// labelled values must all be present; otherwise every field is left nil.
// A JSON object reply is read by key instead.
func ParseDetails(text string) *PropertyDetails {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
		return parseDetailsJSON(gjson.Parse(trimmed))
	}

	sqft, ok1 := matchFloat(squareFeetPattern, text)
	beds, ok2 := matchInt(bedroomsPattern, text)
	baths, ok3 := matchFloat(bathroomsPattern, text)
	value, ok4 := matchFloat(estimatedValuePattern, text)
	year, ok5 := matchInt(yearBuiltPattern, text)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return &PropertyDetails{}
	}

	return &PropertyDetails{
		SquareFeet:     &sqft,
		Bedrooms:       &beds,
		Bathrooms:      &baths,
		EstimatedValue: &value,
		YearBuilt:      &year,
	}
}

func parseDetailsJSON(doc gjson.Result) *PropertyDetails {
	d := &PropertyDetails{}

	if v := firstNumber(doc, "square_feet", "squareFeet", "Square Feet"); v.Exists() {
		f := v.Float()
		d.SquareFeet = &f
	}
	if v := firstNumber(doc, "bedrooms", "Bedrooms"); v.Exists() {
		n := int(v.Int())
		d.Bedrooms = &n
	}
	if v := firstNumber(doc, "bathrooms", "Bathrooms"); v.Exists() {
		f := v.Float()
		d.Bathrooms = &f
	}
	if v := firstNumber(doc, "estimated_value", "estimatedValue", "Estimated Value"); v.Exists() {
		f := v.Float()
		d.EstimatedValue = &f
	}
	if v := firstNumber(doc, "year_built", "yearBuilt", "Year Built"); v.Exists() {
		n := int(v.Int())
		d.YearBuilt = &n
	}
	return d
}

// firstNumber returns the first of keys holding a number, or a number-like
// string such as "$450,000".
func firstNumber(doc gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		v := doc.Get(gjson.Escape(k))
		switch v.Type {
		case gjson.Number:
			return v
		case gjson.String:
			cleaned := strings.NewReplacer(",", "", "$", "").Replace(strings.TrimSpace(v.Str))
			if _, err := strconv.ParseFloat(cleaned, 64); err == nil {
				return gjson.Parse(cleaned)
			}
		}
	}
	return gjson.Result{}
}

// ParseSchools reads blank-line separated school entries. An entry is kept
// only when its name, distance, rating and type are all present.
func ParseSchools(text string) []School {
	var schools []School

	for _, entry := range blankLines.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name := schoolNamePattern.FindStringSubmatch(entry)
		distance, okDistance := matchFloat(schoolDistancePattern, entry)
		rating, okRating := matchFloat(schoolRatingPattern, entry)
		kind := schoolTypePattern.FindStringSubmatch(entry)
		if name == nil || !okDistance || !okRating || kind == nil {
			continue
		}

		schools = append(schools, School{
			Name:     strings.TrimSpace(name[1]),
			Distance: distance,
			Rating:   rating,
			Type:     strings.ToLower(kind[1]),
		})
	}

	return schools
}

func matchFloat(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func matchInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
