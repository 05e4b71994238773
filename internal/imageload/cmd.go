package imageload

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg reports that the image at Index finished decoding.
type LoadedMsg struct {
	Index int
	Src   string
	Entry Entry
}

// FailedMsg reports that the image at Index could not be decoded.
type FailedMsg struct {
	Index int
	Src   string
	Err   error
}

// Load returns a command decoding src through the cache. The result carries
// index so the receiver can drop results for an image no longer shown.
func (c *Cache) Load(index int, src string) tea.Cmd {
	return func() tea.Msg {
		e, err := c.Get(src)
		if err != nil {
			return FailedMsg{Index: index, Src: src, Err: err}
		}
		return LoadedMsg{Index: index, Src: src, Entry: e}
	}
}

// Prefetch returns a command warming the cache with srcs. It produces no
// message; failures surface when the image is actually loaded.
func (c *Cache) Prefetch(srcs ...string) tea.Cmd {
	if len(srcs) == 0 {
		return nil
	}
	return func() tea.Msg {
		for _, src := range srcs {
			_, _ = c.Get(src) //nolint:errcheck // reported by Load
		}
		return nil
	}
}
