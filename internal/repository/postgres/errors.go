package postgres

import (
	"errors"
	"fmt"
	"strings"

	"explorer/internal/domain"

	"github.com/jackc/pgx/v5"
)

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// StorageError tags a driver failure with the operation name and domain.ErrStorage
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// EscapeLikePattern escapes LIKE wildcards so user input matches literally.
// Queries using it must declare ESCAPE '\'.
func EscapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
