package indicator

import "fmt"

// IndicatorError reports input the engine refuses to enrich.
type IndicatorError struct {
	Index  int
	Reason string
}

func (e *IndicatorError) Error() string {
	return fmt.Sprintf("indicator: row %d: %s", e.Index, e.Reason)
}
