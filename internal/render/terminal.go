package render

import (
	"os"
	"strconv"
)

// Default width constants.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// DetectWidth returns the terminal width from the COLUMNS environment
// variable, clamped to [MinWidth, MaxWidth], or DefaultWidth if not set or
// invalid.
func DetectWidth() int {
	columnsEnv := os.Getenv("COLUMNS")
	if columnsEnv == "" {
		return DefaultWidth
	}

	width, err := strconv.Atoi(columnsEnv)
	if err != nil {
		return DefaultWidth
	}

	if width < MinWidth {
		return MinWidth
	}

	if width > MaxWidth {
		return MaxWidth
	}

	return width
}

// NoColorEnv reports whether the NO_COLOR convention disables color.
func NoColorEnv() bool {
	return os.Getenv("NO_COLOR") != ""
}
