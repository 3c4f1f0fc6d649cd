package model

import "time"

const (
	ChatSenderUser      = "user"
	ChatSenderAssistant = "assistant"
)

const (
	// ChatFallbackReply is appended in place of a reply whenever the
	// assistant pipeline fails. A raw error never reaches a transcript.
	ChatFallbackReply = "I am having some trouble connecting to my brain. Please try again later!"
	// ChatEmptyReply covers the rare success response with no text in it.
	ChatEmptyReply = "I'm sorry, I couldn't generate a response right now."
)

// ChatMessage is a transcript entry. Transcripts are ephemeral and live
// only in the client; nothing here is persisted.
type ChatMessage struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}
