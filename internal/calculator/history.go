package calculator

// HistoryLimit is the number of entries retained in history
const HistoryLimit = 10

// history is a bounded FIFO of operation records
type history struct {
	entries []string
	limit   int
}

func newHistory(limit int) *history {
	return &history{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// add appends an entry, evicting the oldest once the limit is reached
func (h *history) add(entry string) {
	if len(h.entries) >= h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, entry)
}

func (h *history) clear() {
	h.entries = h.entries[:0]
}

// list returns a copy of the entries, oldest first
func (h *history) list() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
