// Package burst builds fixed-size counter payloads and drives the sequential
// publish loop over one connected session.
package burst

import "strconv"

const (
	fillerChar = 'x'
	separator  = ':'
)

// MinimumSize returns the smallest payload size able to carry the counter:
// its decimal representation plus the separator.
func MinimumSize(counter int64) int {
	return len(strconv.FormatInt(counter, 10)) + 1
}

// BuildMessage returns a payload of exactly size bytes encoding the counter
// as <filler><separator><decimal>. The counter is always recoverable from
// the substring after the last separator.
func BuildMessage(counter int64, size int) ([]byte, error) {
	counterStr := strconv.FormatInt(counter, 10)
	overhead := len(counterStr) + 1
	if size < overhead {
		return nil, &SizeError{Counter: counter, Size: size, Min: overhead}
	}

	payload := make([]byte, size)
	fillerLen := size - overhead
	for i := 0; i < fillerLen; i++ {
		payload[i] = fillerChar
	}
	payload[fillerLen] = separator
	copy(payload[fillerLen+1:], counterStr)
	return payload, nil
}

// CheckCapacity verifies the configured size can hold every counter of the
// burst, so undersized runs are rejected before any network activity.
// Decimal width over a contiguous range peaks at an endpoint, and for
// negative starts the widest counter may be the start itself.
func CheckCapacity(start int64, count int, size int) error {
	last := start + int64(count) - 1
	for _, counter := range []int64{start, last} {
		if minSize := MinimumSize(counter); size < minSize {
			return &SizeError{Counter: counter, Size: size, Min: minSize}
		}
	}
	return nil
}
