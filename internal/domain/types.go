package domain

import "time"

type EntryID string
type MessageID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Timestamp = time.Time
