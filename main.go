package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/lunchbot/cliparse"
	"github.com/danielhkuo/lunchbot/composer"
	"github.com/danielhkuo/lunchbot/db"
	"github.com/danielhkuo/lunchbot/handlers"
	"github.com/danielhkuo/lunchbot/ledger"
	"github.com/danielhkuo/lunchbot/listener"
	"github.com/danielhkuo/lunchbot/router"
	"github.com/danielhkuo/lunchbot/slackapi"
	"github.com/danielhkuo/lunchbot/voting"
)

const shutdownTimeout = 5 * time.Second

// voteLedger is what both the coordinator and the stats endpoint need
type voteLedger interface {
	voting.Ledger
	handlers.StatsSource
}

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot stopped")
}

func run(ctx context.Context, cfg cliparse.Config) error {
	menu, err := composer.LoadMenu(cfg.MenuFile)
	if err != nil {
		return err
	}

	options := []slack.Option{slack.OptionDebug(cfg.Debug)}
	if cfg.AppToken != "" {
		options = append(options, slack.OptionAppLevelToken(cfg.AppToken))
	}
	client := slackapi.New(cfg.SlackToken, options...)

	votes, closeLedger, err := openLedger(cfg.LedgerBackend)
	if err != nil {
		return err
	}
	defer closeLedger()
	slog.Info("Vote ledger ready", "backend", cfg.LedgerBackend)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.RunsWebhook() {
		server := &http.Server{
			Handler:           router.NewRouter(voting.NewCoordinator(votes, client), votes, time.Now()),
			Addr:              ":" + strconv.Itoa(cfg.Port),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			slog.Info("Listening", "port", cfg.Port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if cfg.RunsListener() {
		botID, err := client.BotUserID(ctx)
		if err != nil {
			return err
		}
		slog.Info("Connected as bot", "user_id", botID)

		feed := listener.NewSocketFeed(client.API(), cfg.Debug)
		bot := listener.New(feed, client, menu, botID)

		g.Go(func() error {
			if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		})
		g.Go(func() error {
			return bot.Run(ctx)
		})
	}

	return g.Wait()
}

func openLedger(backend string) (voteLedger, func(), error) {
	if backend != cliparse.LedgerSQLite {
		return ledger.NewMemory(), func() {}, nil
	}

	conn, err := db.OpenMemory()
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewSQL(conn), func() { conn.Close() }, nil
}
