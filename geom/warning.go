package geom

import "strings"

// Pipeline stage names used in warnings.
const (
	StageTrace    = "trace"
	StageClassify = "classify"
	StageRegions  = "regions"
)

// Warning describes a non-fatal data-quality issue found while
// reconstructing a layer, usually a sign of non-manifold or degenerate
// geometry from upstream slicing. Processing continues best-effort after a
// warning; the library itself never logs.
type Warning struct {
	Stage   string // pipeline stage that noticed the issue
	Message string
}

// String returns the warning as "stage: message".
func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(ws []Warning) string {
	msgs := make([]string, len(ws))
	for i, w := range ws {
		msgs[i] = w.String()
	}
	return strings.Join(msgs, "; ")
}
