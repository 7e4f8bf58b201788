// Package phone parses and formats contact phone numbers.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when the caller passes an empty region.
const DefaultRegion = "US"

var ErrInvalidNumber = errors.New("invalid phone number")

// Format returns raw in international form when it parses to a valid
// number. Anything else, including partial input, comes back unchanged so
// as-you-type formatting never loses what the user typed.
func Format(raw, region string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	formatted, err := Normalize(trimmed, region)
	if err != nil {
		return raw
	}
	return formatted
}

// Normalize parses raw and returns its international form.
func Normalize(raw, region string) (string, error) {
	num, err := parse(raw, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), nil
}

func IsValid(raw, region string) bool {
	_, err := parse(raw, region)
	return err == nil
}

func parse(raw, region string) (*phonenumbers.PhoneNumber, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidNumber
	}
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, ErrInvalidNumber
	}
	return num, nil
}
