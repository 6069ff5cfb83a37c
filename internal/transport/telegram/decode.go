package telegram

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/safar/go-chat-store/internal/transport"
)

// Decode parses a raw webhook body. ok is false for update kinds the core
// does not handle (edited messages, stickers, channel posts).
func Decode(raw []byte) (u transport.Update, ok bool, err error) {
	var update gotgbot.Update
	if err := json.Unmarshal(raw, &update); err != nil {
		return transport.Update{}, false, fmt.Errorf("decode telegram update: %w", err)
	}
	u, ok = FromUpdate(update)
	return u, ok, nil
}

// FromUpdate maps a Telegram update onto a transport event.
func FromUpdate(update gotgbot.Update) (transport.Update, bool) {
	if cq := update.CallbackQuery; cq != nil {
		// Private chats share the user's id.
		return transport.Update{
			ID:     update.UpdateId,
			ChatID: cq.From.Id,
			From:   sender(&cq.From),
			Event:  transport.ButtonPress{CallbackID: cq.Id, Data: cq.Data},
		}, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return transport.Update{}, false
	}

	u := transport.Update{ID: update.UpdateId, ChatID: msg.Chat.Id, From: sender(msg.From)}
	switch {
	case msg.Location != nil:
		u.Event = transport.LocationShare{Latitude: msg.Location.Latitude, Longitude: msg.Location.Longitude}
	case msg.Text != "":
		if cmd, ok := transport.ParseCommand(msg.Text); ok {
			u.Event = cmd
		} else {
			u.Event = transport.TextReply{Raw: msg.Text}
		}
	case msg.Contact != nil:
		u.Event = transport.TextReply{Raw: msg.Contact.PhoneNumber}
	default:
		return transport.Update{}, false
	}
	return u, true
}

func sender(user *gotgbot.User) transport.Sender {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Username
	}
	return transport.Sender{ID: user.Id, FullName: name, LanguageCode: user.LanguageCode}
}
