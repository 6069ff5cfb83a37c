// Package transport is the boundary between the chat protocol and the core.
// Adapters decode protocol updates into Update values and implement Messenger;
// nothing above this package sees protocol types.
package transport

import (
	"context"
	"strings"
)

// Sender identifies the user behind an update.
type Sender struct {
	ID           int64
	FullName     string
	LanguageCode string
}

// Event is one of Command, ButtonPress, TextReply, LocationShare.
type Event interface {
	isEvent()
}

type Command struct {
	Name string
	Args []string
}

type ButtonPress struct {
	// CallbackID must be acknowledged once the press has been handled.
	CallbackID string
	Data       string
}

type TextReply struct {
	Raw string
}

type LocationShare struct {
	Latitude  float64
	Longitude float64
}

func (Command) isEvent()       {}
func (ButtonPress) isEvent()   {}
func (TextReply) isEvent()     {}
func (LocationShare) isEvent() {}

// Update is a decoded inbound event for one chat.
type Update struct {
	ID     int64
	ChatID int64
	From   Sender
	Event  Event
}

// ParseCommand splits "/name@bot arg1 arg2" into a Command. ok is false for
// text that is not a command.
func ParseCommand(text string) (Command, bool) {
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return Command{}, false
	}
	name, _, _ := strings.Cut(fields[0], "@")
	return Command{Name: strings.ToLower(name), Args: fields[1:]}, true
}

type Button struct {
	Text string
	Data string
}

type ReplyButton struct {
	Text            string
	RequestLocation bool
}

// Options decorate an outgoing message. At most one of Inline, Reply and
// RemoveKeyboard should be set.
type Options struct {
	HTML           bool
	Inline         [][]Button
	Reply          [][]ReplyButton
	OneTime        bool
	RemoveKeyboard bool
}

// Messenger sends messages on behalf of the core.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string, opts *Options) error
	SendPhoto(ctx context.Context, chatID int64, url, caption string, opts *Options) error
	// Acknowledge answers a button press; text is an optional toast.
	Acknowledge(ctx context.Context, callbackID, text string) error
}

// Handler receives decoded updates.
type Handler interface {
	Submit(ctx context.Context, u Update)
}

type HandlerFunc func(ctx context.Context, u Update)

func (f HandlerFunc) Submit(ctx context.Context, u Update) { f(ctx, u) }

// InlineColumn lays buttons out one per row.
func InlineColumn(buttons ...Button) [][]Button {
	rows := make([][]Button, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []Button{b})
	}
	return rows
}
