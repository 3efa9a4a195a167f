package utils

import "time"

const (
	displayDateLayout = "02/01/2006" // DD/MM/YYYY, the form input format
	isoDateLayout     = "2006-01-02"
)

// ValidDisplayDate reports whether value is a real calendar date in the
// DD/MM/YYYY form the activity forms submit.
func ValidDisplayDate(value string) bool {
	_, err := time.Parse(displayDateLayout, value)
	return err == nil
}

// ISODate converts a stored DD/MM/YYYY date to YYYY-MM-DD for API output.
// Values already in ISO form pass through; anything unparseable degrades to
// nil rather than failing the listing.
func ISODate(value string) *string {
	if value == "" {
		return nil
	}

	if parsed, err := time.Parse(displayDateLayout, value); err == nil {
		iso := parsed.Format(isoDateLayout)
		return &iso
	}

	if _, err := time.Parse(isoDateLayout, value); err == nil {
		return &value
	}

	return nil
}
