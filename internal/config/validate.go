package config

import (
	"fmt"

	"github.com/rileyhilliard/indicate/internal/errors"
)

// Validate checks settings for values the overlay cannot run with.
func Validate(s *Settings) error {
	if s.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Redraw interval %s is too short", s.Interval),
			fmt.Sprintf("Use at least %s, e.g. interval: 20ms", MinInterval))
	}

	if s.Scale <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Scale must be positive, got %g", s.Scale),
			"Use 1 for normal density, 2 for HiDPI")
	}

	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Frame size %dx%d is invalid", s.Width, s.Height),
			"Width and height must be positive pixel counts")
	}

	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Cell size %gx%g is invalid", s.CellWidth, s.CellHeight),
			"cell_width and cell_height must be positive pixel counts")
	}

	return nil
}
