// ABOUTME: Navigation history for a split-view session
// ABOUTME: Arena of entries with an integer cursor and branch-and-truncate semantics

package domain

// HistoryEntry describes one viewer state
type HistoryEntry struct {
	URL         string       `json:"url"`
	Type        Presentation `json:"type"`
	TextContent string       `json:"textContent,omitempty"`
	TextTitle   string       `json:"textTitle,omitempty"`
	ReaderMode  bool         `json:"readerMode"`
}

// History is a back/forward log. Cursor is -1 when Entries is empty and
// otherwise satisfies 0 <= Cursor < len(Entries).
type History struct {
	Entries []HistoryEntry `json:"entries"`
	Cursor  int            `json:"cursor"`
}

// NewHistory returns an empty history
func NewHistory() History {
	return History{Entries: []HistoryEntry{}, Cursor: -1}
}

// Open appends an entry after the cursor, discarding any forward entries
func (h *History) Open(entry HistoryEntry) {
	h.normalize()
	h.Entries = append(h.Entries[:h.Cursor+1], entry)
	h.Cursor = len(h.Entries) - 1
}

// OpenText appends a text entry
func (h *History) OpenText(content, title string) {
	h.Open(HistoryEntry{
		Type:        PresentationText,
		TextContent: content,
		TextTitle:   title,
	})
}

// Current returns the entry under the cursor
func (h *History) Current() (HistoryEntry, bool) {
	h.normalize()
	if h.Cursor < 0 {
		return HistoryEntry{}, false
	}
	return h.Entries[h.Cursor], true
}

// CanGoBack reports whether Back would move the cursor
func (h *History) CanGoBack() bool {
	h.normalize()
	return h.Cursor > 0
}

// CanGoForward reports whether Forward would move the cursor
func (h *History) CanGoForward() bool {
	h.normalize()
	return h.Cursor >= 0 && h.Cursor < len(h.Entries)-1
}

// Back moves the cursor one entry back
func (h *History) Back() (HistoryEntry, bool) {
	if !h.CanGoBack() {
		return HistoryEntry{}, false
	}
	h.Cursor--
	return h.Entries[h.Cursor], true
}

// Forward moves the cursor one entry forward
func (h *History) Forward() (HistoryEntry, bool) {
	if !h.CanGoForward() {
		return HistoryEntry{}, false
	}
	h.Cursor++
	return h.Entries[h.Cursor], true
}

// SwitchToReaderMode flags the current entry as shown in reader mode.
// Text entries have no page to read and are left alone.
func (h *History) SwitchToReaderMode() (HistoryEntry, bool) {
	entry, ok := h.Current()
	if !ok || entry.Type == PresentationText || entry.URL == "" {
		return HistoryEntry{}, false
	}
	h.Entries[h.Cursor].ReaderMode = true
	return h.Entries[h.Cursor], true
}

// Clear drops every entry
func (h *History) Clear() {
	h.Entries = []HistoryEntry{}
	h.Cursor = -1
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.Entries)
}

// normalize repairs a cursor decoded from storage so the index invariant holds
func (h *History) normalize() {
	if len(h.Entries) == 0 {
		h.Cursor = -1
		return
	}
	if h.Cursor < 0 {
		h.Cursor = 0
	}
	if h.Cursor >= len(h.Entries) {
		h.Cursor = len(h.Entries) - 1
	}
}
