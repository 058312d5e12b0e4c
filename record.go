package receipts

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Positions of each segment in a receipt file name.
const (
	fieldDate = iota
	fieldVendor
	fieldCost
	fieldDescription
	fieldCategory
	fieldLocation

	fieldCount
)

// fieldSeparator separates the segments of a receipt file name.
const fieldSeparator = "-"

// locationSuffix is carried by the last segment of every receipt file name.
const locationSuffix = ".pdf"

// Location is the cost center a receipt is charged to.
type Location string

const (
	Southroads Location = "southroads"
	Utica      Location = "utica"
	// Split marks a receipt whose cost must be shared between Southroads and Utica.
	Split Location = "split"
)

// Locations lists the valid locations.
var Locations = []Location{Southroads, Utica, Split}

// ParseLocation parses the location segment of a file name, suffix included
// (e.g. "Utica.pdf"). The comparison is case-insensitive.
func ParseLocation(segment string) (Location, error) {
	s := strings.ToLower(segment)
	for _, l := range Locations {
		if s == string(l)+locationSuffix {
			return l, nil
		}
	}
	return "", newError(InvalidLocation, "", nil, "location %q must be one of 'southroads', 'utica' or 'split'", segment)
}

// Record is a receipt decoded from its file name.
//
// The file name is the only source of truth: a Record holds the six segments
// of the name and every attribute is derived from them.
// Records are values, the With* methods return modified copies.
type Record struct {
	sourceDir string
	fields    [fieldCount]string
	cost      decimal.Decimal
	location  Location
}

// Decode decodes the receipt at path, relative to its sourceDir.
//
// The name relative to sourceDir must match
//
//	<date>-<vendor>-<cost>-<description>-<category>-<location>.pdf
func Decode(sourceDir, path string) (Record, error) {
	name, err := filepath.Rel(sourceDir, path)
	if err != nil || name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return Record{}, newError(InvalidFileName, path, err, "file is not in %q", sourceDir)
	}

	parts := strings.Split(name, fieldSeparator)
	if len(parts) != fieldCount {
		return Record{}, newError(InvalidFileName, name, nil, "must consist of %d segments separated by %q but has %d", fieldCount, fieldSeparator, len(parts))
	}

	r := Record{sourceDir: sourceDir}
	copy(r.fields[:], parts)

	if !isDate(r.fields[fieldDate]) {
		return Record{}, newError(InvalidDate, name, nil, "date %q must consist of 6 digits like '010125'", r.fields[fieldDate])
	}

	r.cost, err = decimal.NewFromString(r.fields[fieldCost])
	if err != nil {
		return Record{}, newError(InvalidCost, name, err, "cost %q is not a decimal number", r.fields[fieldCost])
	}

	r.location, err = ParseLocation(r.fields[fieldLocation])
	if err != nil {
		return Record{}, withPath(err, name)
	}
	return r, nil
}

// isDate reports whether s is made of exactly 6 ASCII digits.
func isDate(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// withPath sets the path of an *Error that has none.
func withPath(err error, path string) error {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = path
	}
	return err
}

func (r Record) SourceDir() string        { return r.sourceDir }
func (r Record) Date() string             { return r.fields[fieldDate] }
func (r Record) Vendor() string           { return r.fields[fieldVendor] }
func (r Record) Cost() decimal.Decimal    { return r.cost }
func (r Record) Description() string      { return r.fields[fieldDescription] }
func (r Record) Category() string         { return r.fields[fieldCategory] }
func (r Record) Location() Location       { return r.location }
func (r Record) IsSplit() bool            { return r.location == Split }
func (r Record) Fields() []string         { return append([]string(nil), r.fields[:]...) }
func (r Record) String() string           { return r.Name() }
func (r Record) Equal(other Record) bool  { return r.sourceDir == other.sourceDir && r.fields == other.fields }

// Name returns the file name relative to the source dir, built from the fields.
func (r Record) Name() string { return strings.Join(r.fields[:], fieldSeparator) }

// Path returns the full path of the receipt file.
func (r Record) Path() string { return filepath.Join(r.sourceDir, r.Name()) }

// WithCost returns a copy of r with a new cost.
//
// The cost segment is rendered with the decimal's own scale, so that a cost
// built with two fractional digits keeps them ("3.50").
func (r Record) WithCost(cost decimal.Decimal) Record {
	r.cost = cost
	r.fields[fieldCost] = formatCost(cost)
	return r
}

// WithLocation returns a copy of r charged to a new location.
func (r Record) WithLocation(location Location) (Record, error) {
	segment := string(location) + locationSuffix
	l, err := ParseLocation(segment)
	if err != nil {
		return r, withPath(err, r.Name())
	}
	r.location = l
	r.fields[fieldLocation] = segment
	return r, nil
}

// WithSourceDir returns a copy of r living in another directory.
func (r Record) WithSourceDir(dir string) Record {
	r.sourceDir = dir
	return r
}

// formatCost renders a decimal keeping its fractional digits.
func formatCost(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date())
	w.Append("vendor", r.Vendor())
	w.Append("cost", json.Number(formatCost(r.cost)))
	w.Append("description", r.Description())
	w.Append("category", r.Category())
	w.Append("location", r.location)
	w.Optional("path", r.Path())
	return w.MarshalJSON()
}
