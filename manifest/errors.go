package manifest

import "fmt"

// Document error codes (M100-M199)
const (
	ErrBadDocument    = "M100" // malformed document structure
	ErrFixtureEmpty   = "M101" // fixture name is required
	ErrMethodsEmpty   = "M102" // at least one method required
	ErrMethodUnknown  = "M103" // method not present on the fixture type
	ErrCaseShape      = "M104" // case entry is not a value list or scalar
	ErrTimeoutInvalid = "M105" // timeout does not parse as a duration
	ErrPanicSpec      = "M106" // panic matcher is not plain data
)

// DocumentError represents a structural problem in a declarative
// document.
type DocumentError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}
