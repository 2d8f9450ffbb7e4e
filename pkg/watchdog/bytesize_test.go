package watchdog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		input       string
		expected    ByteSize
		expectError bool
	}{
		{input: "0", expected: 0},
		{input: "1024", expected: 1024},
		{input: "200KB", expected: 200 * 1024},
		{input: "200MB", expected: 200 * 1024 * 1024},
		{input: "2GB", expected: 2 * 1024 * 1024 * 1024},
		{input: "200mb", expected: 200 * 1024 * 1024},
		{input: " 200 MB ", expected: 200 * 1024 * 1024},
		{input: "-1", expected: -1},
		{input: "", expectError: true},
		{input: "MB", expectError: true},
		{input: "200TB", expectError: true},
		{input: "12.5MB", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseByteSize(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestTickEventName(t *testing.T) {
	assert.True(t, TickEvent{Name: "TICK_60"}.IsTick())
	assert.True(t, TickEvent{Name: "TICK_3600"}.IsTick())
	assert.False(t, TickEvent{Name: "PROCESS_STATE_EXITED"}.IsTick())
	assert.False(t, TickEvent{Name: ""}.IsTick())
}
