// Package domain contains core business entities and types for exploring
// diagnostic test performance with Bayesian likelihood-ratio reasoning.
//
// Reference: Deeks JJ, Altman DG. (2004) Diagnostic tests 4: likelihood ratios.
// BMJ. 329(7458):168-9. doi: 10.1136/bmj.329.7458.168
package domain

import (
	"errors"
	"fmt"
)

// Polarity represents the observed result of a diagnostic test.
// A positive result applies the positive likelihood ratio (LR+) to the
// pre-test odds; a negative result applies the negative likelihood ratio (LR-).
type Polarity string

const (
	POSITIVE Polarity = "POSITIVE"
	NEGATIVE Polarity = "NEGATIVE"
)

// SortKey identifies the TestRecord field a record list is ordered by.
type SortKey string

const (
	SortByTest        SortKey = "test"
	SortByCondition   SortKey = "condition"
	SortBySensitivity SortKey = "sensitivity"
	SortBySpecificity SortKey = "specificity"
	SortByLRPlus      SortKey = "lrPlus"
	SortByLRMinus     SortKey = "lrMinus"
)

// SortDirection represents the ordering direction of a sorted record list.
type SortDirection string

const (
	ASCENDING  SortDirection = "ASC"
	DESCENDING SortDirection = "DESC"
)

// AllConditions is the sentinel condition filter meaning "no filter".
const AllConditions = "All"

// Validation errors surfaced by mutators and lookups
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPolarity = errors.New("invalid test-result polarity")
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrUnknownRecord   = errors.New("unknown test record")
)

// IsValid reports whether the polarity is one of the two supported values.
func (p Polarity) IsValid() bool {
	return p == POSITIVE || p == NEGATIVE
}

// String returns the string representation of the polarity.
func (p Polarity) String() string {
	return string(p)
}

// ParsePolarity converts a wire value into a Polarity, accepting the
// lower-case forms the presentation layer sends.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "positive", string(POSITIVE):
		return POSITIVE, nil
	case "negative", string(NEGATIVE):
		return NEGATIVE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolarity, s)
	}
}

// IsValid reports whether the sort key names a sortable TestRecord field.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByTest, SortByCondition, SortBySensitivity, SortBySpecificity, SortByLRPlus, SortByLRMinus:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort key.
func (k SortKey) String() string {
	return string(k)
}

// IsNumeric reports whether the key compares by value rather than lexicographically.
func (k SortKey) IsNumeric() bool {
	switch k {
	case SortBySensitivity, SortBySpecificity, SortByLRPlus, SortByLRMinus:
		return true
	default:
		return false
	}
}

// ParseSortKey converts a wire value into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

// Toggle flips the sort direction.
func (d SortDirection) Toggle() SortDirection {
	if d == ASCENDING {
		return DESCENDING
	}
	return ASCENDING
}

// String returns the string representation of the sort direction.
func (d SortDirection) String() string {
	return string(d)
}
