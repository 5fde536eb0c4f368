package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateRuntime(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		want     int
		wantErr  bool
	}{
		{"default", 0, options.DefaultTickRate, false},
		{"custom", 30, 30, false},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Flags: options.Flags{TickRate: tt.tickRate},
			}

			runtime, err := CreateRuntime(opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, runtime.TickRate)
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
