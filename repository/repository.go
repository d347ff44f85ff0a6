// Package repository implements the services store interfaces on gorm.
// Driver errors are translated into the services error taxonomy here so the
// layers above never see gorm.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"little-lemon-api/services"

	"gorm.io/gorm"
)

// translate maps gorm and sqlite errors onto the service taxonomy.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", services.ErrNotFound, what)
	case strings.Contains(err.Error(), "UNIQUE constraint"):
		return fmt.Errorf("%w: %s already exists", services.ErrConflict, what)
	default:
		return err
	}
}
