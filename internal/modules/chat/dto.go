package chat

// SelectOptionRequest is the payload for choosing a scripted option.
type SelectOptionRequest struct {
	OptionID string `json:"option_id" binding:"required"`
	Label    string `json:"label" binding:"required"`
}

// SendTextRequest is the payload for a free-form message.
type SendTextRequest struct {
	Text string `json:"text"`
}

// SessionResponse is the wire shape of a conversation.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	Typing    bool      `json:"typing"`
}
