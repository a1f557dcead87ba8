package support

import "time"

// Message author labels used throughout the transcript.
const (
	AuthorUser = "user"
	AuthorBot  = "bot"
)

// Message is one entry in a conversation transcript.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
