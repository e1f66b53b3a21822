package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikbrunner/bmlaunch/internal/logger"
)

var (
	ErrIO     = errors.New("cannot read bookmarks source")
	ErrParse  = errors.New("malformed bookmarks source")
	ErrSchema = errors.New("invalid bookmark entry")
)

// SchemaError describes a source entry that does not hold a usable bookmark.
// Index is -1 when the problem is not tied to a single entry.
type SchemaError struct {
	Group  string
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString(ErrSchema.Error())
	if e.Group != "" {
		fmt.Fprintf(&b, " in group %q", e.Group)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// Options controls how sources treat invalid entries.
type Options struct {
	// SkipInvalid drops entries that fail validation instead of aborting the load.
	SkipInvalid bool
}

// reject returns err unless invalid entries are being skipped.
func (o Options) reject(err *SchemaError) error {
	if o.SkipInvalid {
		logger.Warn("skipping %v", err)
		return nil
	}
	return err
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func parseError(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}
