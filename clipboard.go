package imwin

import "github.com/atotto/clipboard"

// ClipboardProvider abstracts system clipboard access.
//
// The GLFW backend's MainWindow implements it with the window clipboard.
// SystemClipboard works without a window.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// SystemClipboard is a ClipboardProvider backed by the platform clipboard
// tools (pbcopy, xclip/xsel, wl-clipboard, or the Windows API).
type SystemClipboard struct{}

// GetText returns the clipboard contents, or "" when unavailable.
func (SystemClipboard) GetText() string {
	if clipboard.Unsupported {
		return ""
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logger.Debug("clipboard read failed", "err", err)
		return ""
	}
	return text
}

// SetText replaces the clipboard contents.
func (SystemClipboard) SetText(text string) {
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Debug("clipboard write failed", "err", err)
	}
}
