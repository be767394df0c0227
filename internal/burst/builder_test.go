package burst

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_ExactSizeAndRecoverableCounter(t *testing.T) {
	tests := []struct {
		name    string
		counter int64
		size    int
	}{
		{"single digit", 1, 10},
		{"zero", 0, 2},
		{"multi digit", 1234, 8},
		{"no filler", 42, 3},
		{"negative", -5, 4},
		{"large counter", 9876543210, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := BuildMessage(tt.counter, tt.size)
			require.NoError(t, err)
			assert.Len(t, payload, tt.size)

			idx := bytes.LastIndexByte(payload, separator)
			require.NotEqual(t, -1, idx, "payload has no separator")
			assert.Equal(t, decimal(tt.counter), string(payload[idx+1:]))

			for _, b := range payload[:idx] {
				assert.Equal(t, byte(fillerChar), b)
			}
		})
	}
}

func TestBuildMessage_TooSmall(t *testing.T) {
	tests := []struct {
		name    string
		counter int64
		size    int
		wantMin int
	}{
		{"one byte for one digit", 1, 1, 2},
		{"two bytes for two digits", 10, 2, 3},
		{"zero size", 7, 0, 2},
		{"negative needs sign room", -100, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildMessage(tt.counter, tt.size)
			require.Error(t, err)

			var sizeErr *SizeError
			require.ErrorAs(t, err, &sizeErr)
			assert.Equal(t, tt.counter, sizeErr.Counter)
			assert.Equal(t, tt.size, sizeErr.Size)
			assert.Equal(t, tt.wantMin, sizeErr.Min)
		})
	}
}

func TestMinimumSize(t *testing.T) {
	tests := []struct {
		counter int64
		want    int
	}{
		{0, 2},
		{9, 2},
		{10, 3},
		{999, 4},
		{-1, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinimumSize(tt.counter), "counter %d", tt.counter)
	}
}

func TestCheckCapacity(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		assert.NoError(t, CheckCapacity(1, 3, 10))
		assert.NoError(t, CheckCapacity(1, 9, 2))
	})

	t.Run("too small at last counter", func(t *testing.T) {
		err := CheckCapacity(6, 5, 2)
		require.Error(t, err)

		var sizeErr *SizeError
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, int64(10), sizeErr.Counter)
		assert.Equal(t, 3, sizeErr.Min)
	})

	t.Run("negative start is widest", func(t *testing.T) {
		err := CheckCapacity(-100, 3, 4)
		require.Error(t, err)

		var sizeErr *SizeError
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, int64(-100), sizeErr.Counter)
		assert.Equal(t, 5, sizeErr.Min)
	})
}

func TestSizeError_Message(t *testing.T) {
	err := &SizeError{Counter: 10, Size: 2, Min: 3}
	assert.Equal(t, "message size must be at least 3 bytes to include counter 10 (got 2)", err.Error())
}

// decimal is the textual counter representation tests verify against
func decimal(counter int64) string {
	return strconv.FormatInt(counter, 10)
}
