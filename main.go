package main

import (
	"context"
	"gamerbot/internal/adapters/backend"
	"gamerbot/internal/adapters/handler"
	"gamerbot/internal/adapters/sender"
	"gamerbot/internal/config"
	"gamerbot/internal/core/domain/command"
	"gamerbot/internal/core/port"
	"gamerbot/internal/core/service"
	"gamerbot/internal/metrics"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const throttlePruneInterval = 10 * time.Minute

func main() {
	log.Info().Msg("starting gamerbot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var logLevel zerolog.Level

	switch cfg.LogLevel {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()
	if cfg.MetricsListen != "" {
		go func() {
			err := m.Serve(ctx, cfg.MetricsListen)
			if err != nil {
				log.Err(err).Msg("metrics server failed")
			}
		}()
	}

	client := backend.NewClient(cfg.BackendURL, cfg.BackendToken, m)
	go service.NewTokenRefresher(client, cfg.RefreshInterval).Run(ctx)

	throttle := service.NewThrottle(cfg.RateLimitEvery, cfg.RateLimitBurst)
	go service.PruneEvery(ctx, throttle, throttlePruneInterval)

	registry := &command.Registry{}
	registry.Register(command.NewHello("!hello"))
	registry.Register(command.NewList(registry, "!commands"))
	registry.Register(command.NewHelp("!commands", "!help"))
	registry.Register(command.NewMeme(client, "!meme"))
	registry.Register(command.NewBacklog(client, "!backlog"))

	newDispatcher := func(s port.TextSender) *command.Dispatcher {
		return command.NewDispatcher(registry, s, throttle, m, cfg.HandlerTimeout)
	}

	switch cfg.Platform {
	case config.PlatformTelegram:
		runTelegram(ctx, cfg, newDispatcher)
	default:
		runDiscord(ctx, cfg, newDispatcher)
	}

	log.Info().Msg("gamerbot exited cleanly")
}

func runDiscord(ctx context.Context, cfg *config.Config, newDispatcher func(port.TextSender) *command.Dispatcher) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing discord session")
	}

	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	discordHandler := handler.NewDiscord(newDispatcher(sender.NewDiscord(session)))

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.String()).Msg("logged in")
	})
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		discordHandler.Handle(ctx, s, m)
	})

	err = session.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open discord session")
	}
	defer session.Close()

	log.Info().Msg("bot listening")
	<-ctx.Done()
	log.Info().Msg("shutdown signal received")
}

func runTelegram(ctx context.Context, cfg *config.Config, newDispatcher func(port.TextSender) *command.Dispatcher) {
	b, err := bot.New(cfg.TelegramToken, bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	telegramHandler := handler.NewTelegram(newDispatcher(sender.NewTelegram(b)))
	b.RegisterHandler(bot.HandlerTypeMessageText, "!", bot.MatchTypePrefix, telegramHandler.Handle)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
