// Package qris turns a static QRIS merchant template into a dynamic payload
// carrying a fixed transaction amount.
//
// A payload is a flat sequence of tag-length-value fields, each encoded as a
// 2-character tag, a 2-digit decimal value length, and the value itself.
// Composition switches the point-of-initiation field (tag 01) from static
// ("11") to dynamic ("12"), inserts the amount field (tag 54) in front of
// the country-code anchor (tag 58, value "ID"), and seals the result with a
// fresh CRC-16/CCITT-FALSE checksum.
package qris

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/checksum"
)

var (
	// ErrInvalidAmount is returned when the amount is empty, non-numeric,
	// non-positive, or too long for the 2-digit length prefix.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMalformedTemplate is returned when the template is missing a
	// required field, carries a duplicate anchor, or does not parse as a
	// tag-length-value sequence.
	ErrMalformedTemplate = errors.New("malformed template")
)

const (
	initiationTag = "01"
	amountTag     = "54"
	countryTag    = "58"

	staticMode  = "11"
	dynamicMode = "12"
	countryID   = "ID"

	checksumLen = 4

	// maxAmountDigits is what a 2-digit decimal length prefix can describe.
	maxAmountDigits = 99
)

type field struct {
	tag   string
	value string
}

func (f field) encode() string {
	return fmt.Sprintf("%s%02d%s", f.tag, len(f.value), f.value)
}

// ComposeDynamic builds the dynamic payload for the given static template
// and amount (a decimal string of whole currency units). The template must
// arrive with its existing 4-character checksum, which is stripped and
// recomputed. The returned payload is byte-for-byte stable for identical
// inputs.
func ComposeDynamic(template, amount string) (string, error) {
	if err := validateAmount(amount); err != nil {
		return "", err
	}
	if len(template) <= checksumLen {
		return "", fmt.Errorf("%w: template shorter than its checksum", ErrMalformedTemplate)
	}

	fields, tail, err := scan(template[:len(template)-checksumLen])
	if err != nil {
		return "", err
	}

	anchor := -1
	sawInitiation := false
	for i, f := range fields {
		switch f.tag {
		case initiationTag:
			sawInitiation = true
			switch f.value {
			case staticMode:
				fields[i].value = dynamicMode
			case dynamicMode:
				// already dynamic, nothing to switch
			default:
				return "", fmt.Errorf("%w: unexpected point-of-initiation value %q", ErrMalformedTemplate, f.value)
			}
		case amountTag:
			return "", fmt.Errorf("%w: template already carries an amount field", ErrMalformedTemplate)
		case countryTag:
			if f.value != countryID {
				return "", fmt.Errorf("%w: unexpected country code %q", ErrMalformedTemplate, f.value)
			}
			if anchor >= 0 {
				return "", fmt.Errorf("%w: duplicate country code anchor", ErrMalformedTemplate)
			}
			anchor = i
		}
	}
	if anchor < 0 {
		return "", fmt.Errorf("%w: country code anchor not found", ErrMalformedTemplate)
	}
	if !sawInitiation {
		return "", fmt.Errorf("%w: point-of-initiation field not found", ErrMalformedTemplate)
	}

	var out []byte
	for i, f := range fields {
		if i == anchor {
			out = append(out, field{tag: amountTag, value: amount}.encode()...)
		}
		out = append(out, f.encode()...)
	}
	out = append(out, tail...)

	payload := string(out)
	return payload + checksum.CCITTFalse(payload), nil
}

// scan parses a checksum-stripped template into its fields. One trailing
// truncated field is tolerated and returned verbatim as tail: stripping the
// old checksum leaves the bare tag+length of the checksum field behind, and
// the reference behavior never validated that tag.
func scan(s string) ([]field, string, error) {
	var fields []field
	i := 0
	for i < len(s) {
		if len(s)-i < 4 {
			return fields, s[i:], nil
		}
		n, err := strconv.Atoi(s[i+2 : i+4])
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("%w: bad field length at offset %d", ErrMalformedTemplate, i+2)
		}
		if i+4+n > len(s) {
			return fields, s[i:], nil
		}
		fields = append(fields, field{tag: s[i : i+2], value: s[i+4 : i+4+n]})
		i += 4 + n
	}
	return fields, "", nil
}

func validateAmount(amount string) error {
	if amount == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if len(amount) > maxAmountDigits {
		return fmt.Errorf("%w: %d digits exceed the 2-digit length prefix", ErrInvalidAmount, len(amount))
	}
	positive := false
	for i := 0; i < len(amount); i++ {
		c := amount[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, amount)
		}
		if c != '0' {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return nil
}
