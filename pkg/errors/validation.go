package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxPathLength bounds output and config paths.
const maxPathLength = 1024

// ValidateOutputPath validates a destination path for a generated document.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator, not "." or "..")
func ValidateOutputPath(path string) error {
	if err := validatePathChars(path); err != nil {
		return err
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	switch filepath.Base(path) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	return nil
}

// ValidateConfigPath validates a configuration file path.
// Only .toml, .yaml and .yml files are accepted.
func ValidateConfigPath(path string) error {
	if err := validatePathChars(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return nil
	default:
		return New(ErrCodeInvalidPath, "config file must be .toml, .yaml or .yml: %q", path)
	}
}

func validatePathChars(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
