// Package validation holds input checks made by the command line before calling
// into the core packages.
package validation

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"fjacquet/recipe-book/internal/parsererror"
)

// IsValidPath checks if a given path exists and is a regular file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml', 'csv'", format)
	}
}

// IsValidRecipeName checks that a recipe name is not blank and holds no control
// characters.
func IsValidRecipeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return parsererror.ErrEmptyRecipeName
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("recipe name contains a control character: %q", name)
		}
	}
	return nil
}

// IsValidFilePermissions checks if the given file mode is valid for the data files.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 { // Check if 'others' have any permissions
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.String())
	}
	return nil
}
