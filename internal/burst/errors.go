package burst

import "fmt"

// SizeError reports a message size too small to encode a counter. Min is the
// smallest size that would have worked.
type SizeError struct {
	Counter int64
	Size    int
	Min     int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("message size must be at least %d bytes to include counter %d (got %d)", e.Min, e.Counter, e.Size)
}

// PublishError reports a publish the broker did not accept
type PublishError struct {
	Counter int64
	Err     error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish of counter %d failed: %v", e.Counter, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
