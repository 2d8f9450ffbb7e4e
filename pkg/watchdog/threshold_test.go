package watchdog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThreshold(t *testing.T) {
	tests := []struct {
		name     string
		procName string
		group    string
		config   ThresholdConfig
		expected int64
	}{
		{
			name:     "catch-all only",
			procName: "web",
			group:    "app",
			config:   ThresholdConfig{Any: 100},
			expected: 100,
		},
		{
			name:     "program threshold wins when largest",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"web": 500},
				Any:      100,
			},
			expected: 500,
		},
		{
			name:     "qualified program key is consulted",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"app:web": 800},
				Any:      100,
			},
			expected: 800,
		},
		{
			name:     "largest of bare and qualified program keys",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"web": 300, "app:web": 800},
				Any:      100,
			},
			expected: 800,
		},
		{
			name:     "group threshold overrides smaller program threshold",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"web": 200},
				Groups:   map[string]ByteSize{"app": 900},
				Any:      100,
			},
			expected: 900,
		},
		{
			name:     "catch-all overrides smaller group threshold",
			procName: "worker",
			group:    "bg",
			config: ThresholdConfig{
				Groups: map[string]ByteSize{"bg": 1000},
				Any:    2000,
			},
			expected: 2000,
		},
		{
			name:     "nothing configured resolves to zero",
			procName: "web",
			group:    "app",
			config:   ThresholdConfig{},
			expected: 0,
		},
		{
			name:     "configured zero is indistinguishable from absent",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"web": 0},
				Any:      100,
			},
			expected: 100,
		},
		{
			name:     "other program keys are ignored",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"api": 900, "bg:web": 700},
				Any:      100,
			},
			expected: 100,
		},
		{
			name:     "all-negative candidates yield the magnitude of the maximum",
			procName: "web",
			group:    "app",
			config: ThresholdConfig{
				Programs: map[string]ByteSize{"web": -500, "app:web": -300},
				Groups:   map[string]ByteSize{"app": -200},
				Any:      -100,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveThreshold(tt.procName, tt.group, tt.config))
		})
	}
}
