package imageview

import (
	"os"
	"strings"
)

// EnvProtocol overrides protocol detection and the config file.
const EnvProtocol = "PEEK_IMAGE_PROTOCOL"

// Detect returns the image protocol to use, or nil when images cannot be
// displayed. The PEEK_IMAGE_PROTOCOL environment variable wins over
// override (normally the config value); both accept "kitty", "sixel",
// "none" and "auto".
func Detect(override string) Protocol {
	for _, choice := range []string{os.Getenv(EnvProtocol), override} {
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "kitty":
			return KittyProtocol{}
		case "sixel":
			return NewSixelProtocol()
		case "none":
			return nil
		}
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour advertises itself but does not speak Kitty graphics, and
	// parent terminal variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics landed in 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	// xterm only renders sixel when built for it; TERM=xterm is the best
	// hint available.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
