package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/safar/go-chat-store/internal/admin"
	"github.com/safar/go-chat-store/internal/bot"
	"github.com/safar/go-chat-store/internal/checkout"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/logger"
	"github.com/safar/go-chat-store/internal/messaging"
	"github.com/safar/go-chat-store/internal/notify"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/server"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/shop"
	"github.com/safar/go-chat-store/internal/store"
	"github.com/safar/go-chat-store/internal/store/memstore"
	"github.com/safar/go-chat-store/internal/transport"
	"github.com/safar/go-chat-store/internal/transport/telegram"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const handlerTimeout = 30 * time.Second

func main() {
	fx.New(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		injectInfra(),
		injectCore(),
		injectDelivery(),
		fx.Invoke(run),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.Load,
		logger.New,
		newTranslator,
		newStore,
		newRedis,
		newSessionStore,
		newGuard,
		newPublisher,
		newTelegramBot,
		newMessenger,
	)
}

func injectCore() fx.Option {
	return fx.Provide(
		newRegistry,
		newExecutor,
		shop.NewService,
		order.NewService,
		notify.New,
		newCheckout,
		newAdmin,
		newRouter,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		newDispatcher,
		newServer,
	)
}

func newTranslator(cfg *config.Config) (*i18n.Translator, error) {
	return i18n.New(cfg.Bot.DefaultLanguage)
}

func newStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (repository.Store, error) {
	if cfg.Database.Driver == "memory" {
		log.Warn("using in-memory store; data is lost on restart")
		return memstore.New(), nil
	}

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return closeDB(db) },
	})
	return store.New(db, log), nil
}

func closeDB(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// newRedis returns nil when no address is configured.
func newRedis(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return client.Close() },
	})
	return client, nil
}

func newSessionStore(client *redis.Client, cfg *config.Config) session.Store {
	if client == nil {
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(client, cfg.Redis.SessionTTL)
}

func newGuard(client *redis.Client, cfg *config.Config) notify.Guard {
	if client == nil {
		return notify.NewMemoryGuard(cfg.Redis.NotifyTTL)
	}
	return notify.NewRedisGuard(client, cfg.Redis.NotifyTTL)
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) messaging.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return messaging.NoopPublisher{}
	}

	publisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return publisher.Close() },
	})
	return publisher
}

func newTelegramBot(cfg *config.Config) (*gotgbot.Bot, error) {
	return telegram.NewBot(cfg.Telegram.Token, nil)
}

func newMessenger(b *gotgbot.Bot, log *zap.Logger) transport.Messenger {
	return telegram.NewMessenger(b, log)
}

func newRegistry(st session.Store, shopSvc *shop.Service, cfg *config.Config, log *zap.Logger) (*session.Registry, error) {
	policy, err := session.ParseReplacePolicy(cfg.Bot.PromptPolicy)
	if err != nil {
		return nil, err
	}
	return session.NewRegistry(st, session.Options{
		DefaultLanguage: cfg.Bot.DefaultLanguage,
		Policy:          policy,
		IsAdmin:         cfg.Bot.IsAdminChat,
		StoredLanguage:  shopSvc.StoredLanguage,
	}, log), nil
}

func newExecutor(sessions *session.Registry, messenger transport.Messenger, tr *i18n.Translator, log *zap.Logger) *prompt.Executor {
	return prompt.NewExecutor(sessions, messenger, tr, log)
}

func newCheckout(
	shopSvc *shop.Service,
	orders *order.Service,
	prompts *prompt.Executor,
	sessions *session.Registry,
	notifier *notify.Notifier,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg *config.Config,
	log *zap.Logger,
) *checkout.Orchestrator {
	return checkout.New(shopSvc, orders, prompts, sessions, notifier, messenger, tr, cfg.Bot, log)
}

func newAdmin(
	shopSvc *shop.Service,
	orders *order.Service,
	prompts *prompt.Executor,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg *config.Config,
	log *zap.Logger,
) *admin.Router {
	return admin.New(shopSvc, orders, prompts, messenger, tr, cfg.Bot, log)
}

func newRouter(
	sessions *session.Registry,
	prompts *prompt.Executor,
	co *checkout.Orchestrator,
	adm *admin.Router,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg *config.Config,
	log *zap.Logger,
) *bot.Router {
	return bot.NewRouter(sessions, prompts, co, adm, messenger, tr, cfg.Bot, log)
}

func newDispatcher(router *bot.Router, cfg *config.Config, log *zap.Logger) *bot.Dispatcher {
	return bot.NewDispatcher(router, cfg.Bot.Workers, cfg.Bot.QueueSize, handlerTimeout, log)
}

func newServer(dispatcher *bot.Dispatcher, cfg *config.Config, log *zap.Logger) *server.Server {
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	return server.New(cfg.Server, cfg.Telegram.WebhookSecret, dispatcher, log)
}

// run starts the dispatcher, the HTTP ingress and, in polling mode, the
// long-poll loop. Shutdown stops intake first, then drains the dispatcher.
func run(
	lc fx.Lifecycle,
	cfg *config.Config,
	b *gotgbot.Bot,
	dispatcher *bot.Dispatcher,
	srv *server.Server,
	log *zap.Logger,
) {
	pollCtx, stopPolling := context.WithCancel(context.Background())
	polled := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dispatcher.Start(ctx)
			srv.Start()

			if cfg.Telegram.Mode == "webhook" {
				close(polled)
				if err := telegram.SetWebhook(ctx, b, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
					return fmt.Errorf("set webhook: %w", err)
				}
				log.Info("webhook registered", zap.String("url", cfg.Telegram.WebhookURL))
				return nil
			}

			poller := telegram.NewPoller(b, dispatcher, cfg.Telegram.PollTimeout, log)
			go func() {
				defer close(polled)
				if err := poller.Run(pollCtx); err != nil {
					log.Error("polling stopped", zap.Error(err))
				}
			}()
			log.Info("long polling started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopPolling()
			if err := srv.Shutdown(ctx); err != nil {
				log.Warn("http shutdown", zap.Error(err))
			}
			select {
			case <-polled:
			case <-ctx.Done():
			}
			return dispatcher.Stop(ctx)
		},
	})
}
