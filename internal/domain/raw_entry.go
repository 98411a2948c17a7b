package domain

import (
	"time"

	"time-helper/internal/errors"
)

// ExportTimeLayout is the UTC timestamp format used by the timewarrior
// export stream, e.g. "20250728T090000Z".
const ExportTimeLayout = "20060102T150405Z"

// RawEntry represents a time tracking record exactly as produced by the
// external engine. Start and End are UTC timestamps in ExportTimeLayout;
// an empty End means the entry is still running. RawEntries are immutable
// once read.
type RawEntry struct {
	ID         int64    `json:"id"`
	Start      string   `json:"start"`
	End        string   `json:"end,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Annotation string   `json:"annotation,omitempty"`
}

// IsOpen returns true if the raw entry has no end timestamp.
func (r RawEntry) IsOpen() bool {
	return r.End == ""
}

// ParseExportTime parses an engine UTC timestamp into a time.Time.
func ParseExportTime(value string) (time.Time, error) {
	t, err := time.Parse(ExportTimeLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("unparsable timestamp: "+value, err)
	}
	return t.UTC(), nil
}
