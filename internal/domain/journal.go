package domain

// Entry represents a saved journal record: the user's own words from one
// conversation paired with the generated reflection. Entries are immutable
// once created; the only mutation the store supports is deletion.
type Entry struct {
	ID            EntryID   `json:"id"`
	UserText      string    `json:"userText"`
	AssistantText string    `json:"assistantText"`
	CreatedAt     Timestamp `json:"createdAt"`

	// Keywords are derived from the entry text at normalization time
	// unless a non-empty set is already present.
	Keywords []string `json:"keywords"`

	Title string `json:"title"`
}
