package domain

// Message represents a single turn in a draft conversation thread.
type Message struct {
	ID        MessageID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"createdAt"`

	// IsTyping marks the placeholder for an in-flight assistant reply.
	// At most one exists at a time, always last in the thread, and it
	// must never be persisted.
	IsTyping bool `json:"isTyping,omitempty"`

	// IsSeed marks the welcome message. Seed messages are excluded from
	// the history sent to the completion service and from saved entries.
	IsSeed bool `json:"isSeed,omitempty"`
}

// Draft is the persisted shape of an in-progress conversation: the
// message thread plus whatever the user has typed but not sent.
type Draft struct {
	Thread []Message `json:"thread"`
	Input  string    `json:"input"`
}
