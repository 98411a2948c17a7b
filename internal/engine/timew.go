package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"time-helper/internal/domain"
	"time-helper/internal/errors"
	"time-helper/internal/logging"
)

// Exporter is the boundary to the external time-tracking engine. The rest
// of the application only sees raw entry batches and the app error
// taxonomy; engine-specific failures never cross this interface.
type Exporter interface {
	ExportDay(ctx context.Context, day time.Time) ([]domain.RawEntry, error)
}

// Timew invokes the timewarrior binary and parses its export stream.
type Timew struct {
	binary string
}

// NewTimew creates an Exporter backed by the given timewarrior binary.
// An empty name falls back to "timew" on PATH.
func NewTimew(binary string) *Timew {
	if binary == "" {
		binary = "timew"
	}
	return &Timew{binary: binary}
}

// ExportDay runs `timew export <day>` and returns the raw entries recorded
// on that day. A day with no data is not an error; it yields an empty
// batch, matching the engine's own behavior.
func (t *Timew) ExportDay(ctx context.Context, day time.Time) ([]domain.RawEntry, error) {
	date := day.Format("2006-01-02")
	logging.Debugf("engine: %s export %s\n", t.binary, date)

	cmd := exec.CommandContext(ctx, t.binary, "export", date)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			// The engine reports "no data tracked" days with a non-zero exit.
			logging.Debugf("engine: no data for %s: %s\n", date, strings.TrimSpace(stderr.String()))
			return nil, nil
		}
		return nil, errors.NewEngineError("export "+date, err).
			WithContext("binary", t.binary).
			WithContext("stderr", stderr.String())
	}

	entries, err := ParseExport(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseExport decodes the engine's JSON export stream into raw entries.
func ParseExport(data []byte) ([]domain.RawEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var entries []domain.RawEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, errors.NewEngineError("parse export stream", err)
	}
	return entries, nil
}
