package browser

// HistoryEntry represents a single entry in the session history.
// It stores the URL the entry points at and the state and title passed to
// pushState when it was recorded.
type HistoryEntry struct {
	URL   string
	State any
	Title string
}

// HistoryStack manages session history for back/forward navigation.
// Entries after the cursor are the forward history; pushing a new entry
// discards them, as browsers do.
type HistoryStack struct {
	entries []HistoryEntry
	cursor  int
}

// NewHistoryStack creates a history holding a single entry for the landing URL.
func NewHistoryStack(url string) *HistoryStack {
	return &HistoryStack{
		entries: []HistoryEntry{{URL: url}},
	}
}

// Push adds a new entry after the current one and makes it current.
func (s *HistoryStack) Push(entry HistoryEntry) {
	s.entries = append(s.entries[:s.cursor+1], entry)
	s.cursor = len(s.entries) - 1
}

// Back moves the cursor one entry back.
// Returns nil if already at the first entry.
func (s *HistoryStack) Back() *HistoryEntry {
	if s.cursor == 0 {
		return nil
	}
	s.cursor--
	entry := s.entries[s.cursor]
	return &entry
}

// Forward moves the cursor one entry forward.
// Returns nil if already at the last entry.
func (s *HistoryStack) Forward() *HistoryEntry {
	if s.cursor >= len(s.entries)-1 {
		return nil
	}
	s.cursor++
	entry := s.entries[s.cursor]
	return &entry
}

// Current returns the entry under the cursor.
func (s *HistoryStack) Current() HistoryEntry {
	return s.entries[s.cursor]
}

// Len returns the number of entries in the history.
func (s *HistoryStack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of all entries, oldest first.
func (s *HistoryStack) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
