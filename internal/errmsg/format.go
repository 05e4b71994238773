// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Gallery operations
	OpGalleryScan     Op = "scan images"
	OpManifestLoad    Op = "load gallery manifest"
	OpGalleryEmpty    Op = "find any image"
	OpThumbnailRender Op = "render thumbnail"

	// Image operations
	OpImageLoad   Op = "load image"
	OpImageDecode Op = "decode image"
	OpImageRender Op = "render image"
	OpCacheWrite  Op = "write image cache"

	// Terminal operations
	OpTerminalSize Op = "query terminal size"

	OpConfigLoad Op = "load config"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
