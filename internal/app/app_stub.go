//go:build !ebiten

package app

import (
	"errors"

	"lifegrid/internal/config"
)

// Run reports that the GUI requires the ebiten build tag. Headless
// builds keep the rest of the tree compiling and testable.
func Run(config.Config) error {
	return errors.New("the GUI requires the ebiten build tag; rebuild with `-tags ebiten`")
}
