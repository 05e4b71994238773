//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"viewer context", ContextViewer, 6},
		{"global context", ContextGlobal, 5},
		{"gallery context", ContextGallery, 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestViewerBindings(t *testing.T) {
	r := ForContext(ContextViewer)

	tests := []struct {
		key  string
		want Action
	}{
		{"esc", ActionClose},
		{"left", ActionPrevious},
		{"right", ActionNext},
		{"+", ActionZoomIn},
		{"=", ActionZoomIn},
		{"-", ActionZoomOut},
		{"0", ActionResetZoom},
		{"q", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range All {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		ContextViewer:  true,
		ContextGlobal:  true,
		ContextGallery: true,
	}

	for i, b := range All {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestNoKeyConflictsWithinContext(t *testing.T) {
	for _, ctx := range []string{ContextViewer, ContextGlobal, ContextGallery} {
		seen := make(map[string]Action)
		for _, b := range ByContext(ctx) {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok && prev != b.Action {
					t.Errorf("context %q: key %q bound to both %q and %q", ctx, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
}
