package imageview

import "testing"

// clearTerminalEnv removes every variable detection looks at.
func clearTerminalEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvProtocol, "TERM", "TERM_PROGRAM", "KITTY_WINDOW_ID",
		"GHOSTTY_RESOURCES_DIR", "KONSOLE_VERSION", "CONTOUR_PROFILE",
	} {
		t.Setenv(k, "")
	}
}

func protocolName(p Protocol) string {
	if p == nil {
		return "none"
	}
	return p.Name()
}

func TestDetect_Override(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		term     string
		want     string
	}{
		{"config kitty", "", "kitty", "dumb", "kitty"},
		{"config sixel", "", "sixel", "dumb", "sixel"},
		{"config none beats detection", "", "none", "xterm-kitty", "none"},
		{"env beats config", "sixel", "kitty", "dumb", "sixel"},
		{"env is case insensitive", " KITTY ", "", "dumb", "kitty"},
		{"auto falls through", "", "auto", "xterm-kitty", "kitty"},
		{"unknown falls through", "bogus", "", "foot", "sixel"},
		{"nothing supported", "", "", "dumb", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTerminalEnv(t)
			t.Setenv(EnvProtocol, tt.env)
			t.Setenv("TERM", tt.term)

			if got := protocolName(Detect(tt.override)); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.override, got, tt.want)
			}
		})
	}
}

func TestIsKittySupported(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want bool
	}{
		{"kitty window", "KITTY_WINDOW_ID", "1", true},
		{"wezterm", "TERM_PROGRAM", "WezTerm", true},
		{"ghostty", "GHOSTTY_RESOURCES_DIR", "/usr/share/ghostty", true},
		{"new konsole", "KONSOLE_VERSION", "220401", true},
		{"old konsole", "KONSOLE_VERSION", "210800", false},
		{"plain xterm", "TERM", "xterm-256color", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTerminalEnv(t)
			t.Setenv(tt.key, tt.val)
			if got := IsKittySupported(); got != tt.want {
				t.Errorf("IsKittySupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsKittySupported_ContourWins(t *testing.T) {
	clearTerminalEnv(t)
	t.Setenv("KITTY_WINDOW_ID", "1")
	t.Setenv("CONTOUR_PROFILE", "main")
	if IsKittySupported() {
		t.Error("contour should never be treated as kitty")
	}
	if !IsSixelSupported() {
		t.Error("contour speaks sixel")
	}
}
