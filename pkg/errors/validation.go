package errors

import (
	"strings"
	"unicode"
)

// ValidateAPIKey checks that an API key was supplied before any suggestion
// request is attempted. Empty and whitespace-only keys are rejected; the key
// format itself is left to the provider.
func ValidateAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return New(ErrCodeValidationFailed, "please enter your API key")
	}
	return nil
}

// ValidateBusinessDescription checks that the free-text business description
// sent alongside a suggestion request is not blank.
func ValidateBusinessDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return New(ErrCodeValidationFailed, "please describe your business first")
	}
	return nil
}

// ValidatePath validates a relative output file name for safety.
// It prevents path traversal when names come from a request or the editor.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 255
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
