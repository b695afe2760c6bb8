// Package tabgrid loads xlsx workbooks into merge-aware grids, edits them and
// writes them back.
package tabgrid

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Mode represents the load mode.
type Mode string

const (
	// ModeLight loads cell values and merged ranges only.
	ModeLight Mode = "light"
	// ModeStandard also loads row heights and column widths, and snapshots
	// report table candidates.
	ModeStandard Mode = "standard"
	// ModeVerbose also includes formula text in snapshots.
	ModeVerbose Mode = "verbose"
)

// ParseMode parses a mode name. The empty string selects ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeStandard, nil
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
}

// Options configures load and snapshot behavior.
type Options struct {
	// Mode specifies the load mode (light, standard, verbose).
	Mode Mode
	// ResolveMerges specifies whether merged ranges are registered on the
	// loaded grids. If nil, defaults to true.
	ResolveMerges *bool
	// IncludeLayout specifies whether row heights and column widths are loaded.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeLayout *bool
	// Logger receives warnings for parts of a sheet that could not be loaded.
	// If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldResolveMerges returns whether to register merged ranges.
func (o Options) ShouldResolveMerges() bool {
	if o.ResolveMerges != nil {
		return *o.ResolveMerges
	}
	return true
}

// ShouldIncludeLayout returns whether to load row heights and column widths.
func (o Options) ShouldIncludeLayout() bool {
	if o.IncludeLayout != nil {
		return *o.IncludeLayout
	}
	return o.Mode != ModeLight
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
