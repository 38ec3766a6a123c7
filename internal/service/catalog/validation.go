package catalog

import (
	"errors"
	"strings"
	"unicode/utf8"

	"explorer/internal/config"
	"explorer/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	msgFolderNameEmpty   = "Folder name cannot be empty"
	msgFolderNameTooLong = "Folder name too long"
	msgFolderNameInvalid = "Folder name must be valid UTF-8"
	msgParentNotFound    = "Parent folder does not exist"
)

// notBlank rejects names made only of whitespace. The stored name is never trimmed.
var notBlank = validation.NewStringRule(func(s string) bool {
	return strings.TrimSpace(s) != ""
}, msgFolderNameEmpty)

var validUTF8 = validation.By(func(value any) error {
	s, _ := value.(string)
	if !utf8.ValidString(s) {
		return errors.New(msgFolderNameInvalid)
	}
	return nil
})

// validateFolderName checks the raw name: non-empty after trimming, valid
// UTF-8, and at most MaxFolderNameLength characters before trimming.
func validateFolderName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error(msgFolderNameEmpty),
		notBlank,
		validUTF8,
		validation.RuneLength(0, config.MaxFolderNameLength).Error(msgFolderNameTooLong),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}
