package main

import (
	"context"
	"errors"
	"log"
	internalbot "mentionBot/internal/bot"
	"mentionBot/internal/config"
	rostersqlite "mentionBot/internal/db/roster/sqlite"
	settingssqlite "mentionBot/internal/db/settings/sqlite"
	"mentionBot/internal/db/sqlite"
	"mentionBot/internal/service"
	"mentionBot/internal/trigger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/cobra"
)

const limiterIdle = 30 * time.Minute

var envFile string

func main() {
	root := &cobra.Command{
		Use:           "mentionbot",
		Short:         "Telegram bot that tags every registered member of a group",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&envFile, "env-file", ".env", "path to the .env file")
	root.Flags().String("db", "", "sqlite database path (overrides DB_PATH)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(envFile, cmd.Flags())
	if errors.Is(err, config.ErrMissingToken) {
		log.Printf("[main] WARN bot token not found in environment or %s, exiting", envFile)
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	db, err := sqlite.Open(ctx, cfg.DbPath)
	if err != nil {
		return err
	}
	defer sqlite.Close(db)

	users := rostersqlite.NewRepositorySQlite(db)
	chatSettings := settingssqlite.NewRepositorySQlite(db)
	if err := sqlite.Init(users, chatSettings); err != nil {
		log.Printf("[main] cannot initialize repositories path=%s", cfg.DbPath)
		return err
	}

	// getMe is called once below, its result is needed for the dispatcher
	b, err := bot.New(cfg.BotToken,
		bot.WithSkipGetMe(),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, u *models.Update) {}),
		bot.WithErrorsHandler(func(err error) {
			log.Println("[main] polling error:", err)
		}),
	)
	if err != nil {
		return err
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return err
	}

	pending := service.NewPendingManager(cfg.PendingTTL)
	platform := internalbot.NewTelegramPlatform(b, me.ID, cfg.SendInterval)

	sweeper := service.NewSweeper(cfg.PendingTTL,
		service.SweepTask{Name: "pending prompts", Sweep: pending.Sweep},
		service.SweepTask{Name: "send limiters", Sweep: func() int {
			return platform.PruneLimiters(limiterIdle)
		}},
	)
	sweeper.Start()
	defer sweeper.Stop()

	engine := trigger.NewEngine(chatSettings, cfg.Probability, cfg.TargetWord)
	dispatcher := internalbot.NewDispatcher(platform, users, chatSettings, engine, pending, me.Username)

	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, internalbot.NewUpdateHandler(dispatcher))

	log.Printf("[main] listening as @%s probability=%d word=%s", me.Username, cfg.Probability, cfg.TargetWord)
	b.Start(ctx)
	return nil
}
