// Package transporttest provides an in-memory Messenger for tests.
package transporttest

import (
	"context"
	"errors"
	"sync"

	"github.com/safar/go-chat-store/internal/transport"
)

var ErrUnreachable = errors.New("chat unreachable")

type Message struct {
	ChatID   int64
	Text     string
	PhotoURL string
	Options  *transport.Options
}

// Recorder records every outgoing message. Chats marked with Fail get
// ErrUnreachable.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	acks     []string
	failing  map[int64]bool
}

func NewRecorder() *Recorder {
	return &Recorder{failing: make(map[int64]bool)}
}

func (r *Recorder) Fail(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing[chatID] = true
}

func (r *Recorder) SendText(_ context.Context, chatID int64, text string, opts *transport.Options) error {
	return r.record(Message{ChatID: chatID, Text: text, Options: opts})
}

func (r *Recorder) SendPhoto(_ context.Context, chatID int64, url, caption string, opts *transport.Options) error {
	return r.record(Message{ChatID: chatID, Text: caption, PhotoURL: url, Options: opts})
}

func (r *Recorder) Acknowledge(_ context.Context, callbackID, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acks = append(r.acks, callbackID)
	return nil
}

func (r *Recorder) record(m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing[m.ChatID] {
		return ErrUnreachable
	}
	r.messages = append(r.messages, m)
	return nil
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// To returns the messages delivered to chatID in send order.
func (r *Recorder) To(chatID int64) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Message
	for _, m := range r.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// Last returns the latest message delivered to chatID.
func (r *Recorder) Last(chatID int64) (Message, bool) {
	msgs := r.To(chatID)
	if len(msgs) == 0 {
		return Message{}, false
	}
	return msgs[len(msgs)-1], true
}

func (r *Recorder) Acks() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.acks...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
	r.acks = nil
}
