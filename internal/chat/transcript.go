package chat

// Author identifies who wrote a message.
type Author int

const (
	AuthorUser Author = iota
	AuthorBot
)

func (a Author) String() string {
	if a == AuthorBot {
		return "bot"
	}
	return "user"
}

// Message is one transcript line. Pending is true while a bot placeholder
// still waits for its reply.
type Message struct {
	ID      string
	Author  Author
	Text    string
	Pending bool
}

// Transcript is the ordered, append-only message list.
type Transcript struct {
	messages []Message
}

// Append adds m to the end.
func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

// Resolve replaces the text of the pending message id and clears its pending
// flag. It reports false when id is unknown or already resolved.
func (t *Transcript) Resolve(id, text string) bool {
	for i := len(t.messages) - 1; i >= 0; i-- {
		m := &t.messages[i]
		if m.ID != id {
			continue
		}
		if !m.Pending {
			return false
		}
		m.Text = text
		m.Pending = false
		return true
	}
	return false
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
