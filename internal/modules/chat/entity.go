package chat

import "time"

type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// Option is one clickable choice attached to a bot message.
type Option struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

// Message is one transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Options   []Option  `json:"options,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
