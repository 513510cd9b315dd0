package iso4

import "fmt"

// InvalidLTWALine reports one malformed LTWA record encountered while
// parsing.
type InvalidLTWALine struct {
	Line   string
	Reason string
}

func (e *InvalidLTWALine) Error() string {
	return fmt.Sprintf("iso4: invalid LTWA line (%s): %q", e.Reason, e.Line)
}

// BuildError aggregates every InvalidLTWALine found while building an
// Engine, so a caller loading a full LTWA dump gets a complete report in one
// pass instead of stopping at the first bad record.
type BuildError struct {
	Errors []*InvalidLTWALine
}

func (e *BuildError) Error() string {
	if len(e.Errors) == 0 {
		return "iso4: build failed"
	}
	return fmt.Sprintf("iso4: %d invalid LTWA line(s), first: %v", len(e.Errors), e.Errors[0])
}

// Unwrap exposes each invalid line to errors.Is/errors.As.
func (e *BuildError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ie := range e.Errors {
		errs[i] = ie
	}
	return errs
}
