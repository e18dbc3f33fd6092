package resample

import "fmt"

// ResamplingError reports a precondition violation of the daily input.
type ResamplingError struct {
	Index  int // offending row, -1 when not tied to a row
	Reason string
}

func (e *ResamplingError) Error() string {
	if e.Index < 0 {
		return "resample: " + e.Reason
	}
	return fmt.Sprintf("resample: row %d: %s", e.Index, e.Reason)
}
