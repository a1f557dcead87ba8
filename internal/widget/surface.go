package widget

// Named regions the host view must expose.
const (
	FieldUserName    = "user-name"
	FieldUserID      = "user-id"
	FieldUserMessage = "user-message"
)

// Message is one rendered transcript entry.
type Message struct {
	Author  string // support.AuthorUser or support.AuthorBot
	Content string // markup
}

// Surface is the host view the controller drives. Implementations supply
// the rendering technology (terminal, browser bridge, test fake); the
// controller only needs field access, the login/chat toggle, and an
// append-only transcript.
type Surface interface {
	// FieldValue returns the current value of a named input field.
	FieldValue(name string) string
	// SetFieldValue overwrites a named input field.
	SetFieldValue(name, value string)
	// ShowChat hides the login region and reveals the chat region.
	ShowChat()
	// AppendMessage adds one entry to the transcript.
	AppendMessage(msg Message)
	// ScrollToBottom moves the transcript view to its bottom edge.
	ScrollToBottom()
	// Notify surfaces a blocking notification to the user.
	Notify(text string)
}
