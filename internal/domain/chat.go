package domain

// Chat message roles accepted from the widget.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the widget conversation. Order is meaningful:
// the full sequence is replayed to the provider as conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the assistant's answer to a chat submission.
type ChatReply struct {
	Content string `json:"content"`
}
