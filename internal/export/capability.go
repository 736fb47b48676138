package export

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

// Capability reports whether export is offered. Exporter is nil when
// Available is false; Reason then explains why.
type Capability struct {
	Available bool
	Reason    string
	Exporter  Exporter
}

// Resolve maps a configured format to a Capability. It is meant to run once
// at startup.
func Resolve(format string) Capability {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatXLSX:
		return Capability{Available: true, Exporter: XLSXExporter{}}
	case FormatCSV:
		return Capability{Available: true, Exporter: CSVExporter{}}
	case FormatNone, "":
		return Capability{Reason: "export is disabled in the configuration"}
	default:
		return Capability{Reason: fmt.Sprintf("export format %q is not supported (use xlsx or csv)", format)}
	}
}

// Err returns common.ErrExportUnavailable with the reason, or nil.
func (c Capability) Err() error {
	if c.Available {
		return nil
	}
	return fmt.Errorf("%w: %s", common.ErrExportUnavailable, c.Reason)
}
