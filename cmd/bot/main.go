package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-bot/internal/api"
	"game-bot/internal/bot"
	"game-bot/internal/feed"
)

var (
	port        = flag.Int("port", 8080, "Port for the diagnostics API")
	playerIndex = flag.Int("player", 0, "Index of the player this bot controls")
	tickHz      = flag.Float64("tick-hz", 60, "Synthetic feed tick rate")
	feedFile    = flag.String("feed", "", "Read ticks from a recorded JSON feed instead of the synthetic one")
)

func main() {
	flag.Parse()

	// Pick the feed source
	var source feed.Source
	if *feedFile != "" {
		f, err := os.Open(*feedFile)
		if err != nil {
			log.Fatalf("open feed: %v", err)
		}
		defer f.Close()
		source = feed.JSONSource{R: f}
	} else {
		source = feed.SyntheticSource{TickHz: *tickHz}
	}

	// Create the bot with the default tactic chain
	b := bot.New(bot.Config{
		PlayerIndex: *playerIndex,
	})

	// Create API server
	server := api.NewServer(b)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Handler(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Feed ticks into the bot in the background
	ticks := make(chan feed.GameTick, 32)
	go func() {
		defer close(ticks)
		if err := source.Run(ctx, ticks); err != nil && err != context.Canceled {
			log.Printf("feed error: %v", err)
		}
	}()

	go func() {
		if err := b.Run(ctx, ticks); err != nil {
			log.Printf("bot error: %v", err)
		}
	}()

	go func() {
		log.Printf("Starting diagnostics API on :%d", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	cancel()

	log.Println("Shutdown complete")
}
