// Package telegram adapts the Telegram Bot API (gotgbot/v2) to the transport
// interfaces.
package telegram

import (
	"context"
	"fmt"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

const parseModeHTML = "HTML"

type Messenger struct {
	bot    *gotgbot.Bot
	logger *zap.Logger
}

func NewBot(token string, opts *gotgbot.BotOpts) (*gotgbot.Bot, error) {
	bot, err := gotgbot.NewBot(token, opts)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

func NewMessenger(bot *gotgbot.Bot, logger *zap.Logger) *Messenger {
	return &Messenger{bot: bot, logger: logger.Named("telegram")}
}

func (m *Messenger) SendText(ctx context.Context, chatID int64, text string, opts *transport.Options) error {
	sendOpts := &gotgbot.SendMessageOpts{}
	if opts != nil {
		if opts.HTML {
			sendOpts.ParseMode = parseModeHTML
		}
		sendOpts.ReplyMarkup = replyMarkup(opts)
	}

	if _, err := m.bot.SendMessageWithContext(ctx, chatID, text, sendOpts); err != nil {
		return apperrors.Transport(err, "send message to %d", chatID)
	}
	return nil
}

func (m *Messenger) SendPhoto(ctx context.Context, chatID int64, url, caption string, opts *transport.Options) error {
	sendOpts := &gotgbot.SendPhotoOpts{Caption: caption}
	if opts != nil {
		if opts.HTML {
			sendOpts.ParseMode = parseModeHTML
		}
		sendOpts.ReplyMarkup = replyMarkup(opts)
	}

	if _, err := m.bot.SendPhotoWithContext(ctx, chatID, gotgbot.InputFileByURL(url), sendOpts); err != nil {
		return apperrors.Transport(err, "send photo to %d", chatID)
	}
	return nil
}

func (m *Messenger) Acknowledge(ctx context.Context, callbackID, text string) error {
	_, err := m.bot.AnswerCallbackQueryWithContext(ctx, callbackID, &gotgbot.AnswerCallbackQueryOpts{Text: text})
	if err != nil {
		return apperrors.Transport(err, "answer callback %s", callbackID)
	}
	return nil
}

func replyMarkup(opts *transport.Options) gotgbot.ReplyMarkup {
	switch {
	case len(opts.Inline) > 0:
		return inlineKeyboard(opts.Inline)
	case len(opts.Reply) > 0:
		return replyKeyboard(opts.Reply, opts.OneTime)
	case opts.RemoveKeyboard:
		return gotgbot.ReplyKeyboardRemove{RemoveKeyboard: true}
	}
	return nil
}

func inlineKeyboard(rows [][]transport.Button) gotgbot.InlineKeyboardMarkup {
	keyboard := make([][]gotgbot.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]gotgbot.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, gotgbot.InlineKeyboardButton{Text: b.Text, CallbackData: b.Data})
		}
		keyboard = append(keyboard, buttons)
	}
	return gotgbot.InlineKeyboardMarkup{InlineKeyboard: keyboard}
}

func replyKeyboard(rows [][]transport.ReplyButton, oneTime bool) gotgbot.ReplyKeyboardMarkup {
	keyboard := make([][]gotgbot.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]gotgbot.KeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, gotgbot.KeyboardButton{Text: b.Text, RequestLocation: b.RequestLocation})
		}
		keyboard = append(keyboard, buttons)
	}
	return gotgbot.ReplyKeyboardMarkup{Keyboard: keyboard, ResizeKeyboard: true, OneTimeKeyboard: oneTime}
}
