package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/code-forcer/reitsbackend/db"

	"github.com/joho/godotenv"
)

// Pushes an on-demand run request onto the refresher's trigger queue.
// Usage: trigger refresh|news
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: trigger refresh|news")
		os.Exit(2)
	}

	token := os.Args[1]
	if token != db.TriggerRefresh && token != db.TriggerNews {
		fmt.Fprintf(os.Stderr, "unknown trigger %q, want %q or %q\n", token, db.TriggerRefresh, db.TriggerNews)
		os.Exit(2)
	}

	if err := db.ConnectRedis(); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	if err := db.PushTrigger(token); err != nil {
		log.Fatalf("error pushing trigger: %v", err)
	}

	slog.Info("trigger pushed", "token", token)
}
