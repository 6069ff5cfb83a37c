package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

// Poller long-polls getUpdates and hands every decoded update to the handler.
type Poller struct {
	bot     *gotgbot.Bot
	handler transport.Handler
	timeout time.Duration
	logger  *zap.Logger
}

func NewPoller(bot *gotgbot.Bot, handler transport.Handler, timeout time.Duration, logger *zap.Logger) *Poller {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Poller{bot: bot, handler: handler, timeout: timeout, logger: logger.Named("poller")}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	if _, err := p.bot.DeleteWebhookWithContext(ctx, nil); err != nil {
		return err
	}

	var offset int64
	backoff := time.Second
	for {
		updates, err := p.bot.GetUpdatesWithContext(ctx, &gotgbot.GetUpdatesOpts{
			Offset:         offset,
			Timeout:        int64(p.timeout / time.Second),
			AllowedUpdates: []string{"message", "callback_query"},
			RequestOpts:    &gotgbot.RequestOpts{Timeout: p.timeout + 10*time.Second},
		})
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			p.logger.Warn("get updates failed", zap.Error(err), zap.Duration("retry_in", backoff))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, time.Minute)
			continue
		}
		backoff = time.Second

		for _, update := range updates {
			offset = update.UpdateId + 1
			if u, ok := FromUpdate(update); ok {
				p.handler.Submit(ctx, u)
			}
		}
	}
}

// SetWebhook registers url with Telegram for webhook delivery. A non-empty
// secret is sent back with every delivery.
func SetWebhook(ctx context.Context, bot *gotgbot.Bot, url, secret string) error {
	_, err := bot.SetWebhookWithContext(ctx, url, &gotgbot.SetWebhookOpts{
		AllowedUpdates: []string{"message", "callback_query"},
		SecretToken:    secret,
	})
	return err
}
