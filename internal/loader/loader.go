// Package loader handles ROM image loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/system"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM image files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM image loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a ROM image file. Images larger than the loadable program
// area are reported but not rejected, the machine drops the excess
// bytes on construction.
func (l *Loader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, errors.New("ROM image is empty")
	}

	if len(data) > system.MaxProgramSize {
		l.logger.Warn("ROM image exceeds the loadable program area, excess bytes will be dropped",
			log.String("file", path),
			log.Int("size", len(data)),
			log.Int("max", system.MaxProgramSize))
	}
	return data, nil
}
