package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for report range boundaries.
const DateLayout = "2006-01-02"

var tagPattern = regexp.MustCompile(`^[^,\s]+$`)

// ReportRequestValidator validates the caller-supplied parameters of a
// report request before they reach the aggregation core.
type ReportRequestValidator struct{}

// NewReportRequestValidator creates a new report request validator
func NewReportRequestValidator() *ReportRequestValidator {
	return &ReportRequestValidator{}
}

// ValidateDateString checks that a date value is well-formed YYYY-MM-DD.
func (v *ReportRequestValidator) ValidateDateString(field, value string) error {
	validationError := NewValidationError()

	if strings.TrimSpace(value) == "" {
		validationError.AddRequiredError(field)
		return validationError
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		validationError.AddInvalidFormatError(field, value, DateLayout)
		return validationError
	}

	return nil
}

// ValidateRange checks that the inclusive range is ordered.
func (v *ReportRequestValidator) ValidateRange(start, end time.Time) error {
	if !end.Before(start) {
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidRangeError("date_range", map[string]string{
		"start": start.Format(DateLayout),
		"end":   end.Format(DateLayout),
	}, "end date must be on or after start date")
	return validationError
}

// ValidateTags checks each requested filter tag. Tags arrive pre-split;
// embedded whitespace or commas indicate a caller-side parsing mistake.
func (v *ReportRequestValidator) ValidateTags(tags []string) error {
	validationError := NewValidationError()

	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			validationError.AddInvalidValueError("tags", tag, "must not be empty")
			continue
		}
		if !tagPattern.MatchString(trimmed) {
			validationError.AddInvalidValueError("tags", tag, "must not contain whitespace or commas")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ParseDate parses a validated date string into the given location.
func (v *ReportRequestValidator) ParseDate(field, value string, loc *time.Location) (time.Time, error) {
	if err := v.ValidateDateString(field, value); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	t, _ := time.ParseInLocation(DateLayout, value, loc)
	return t, nil
}
