package save

import "fmt"

// LoadError is the single failure surface of the codec: every decode
// problem carries a machine-readable reason and the underlying cause.
type LoadError struct {
	Reason  string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load failed(reason=%s): %s", e.Reason, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }
