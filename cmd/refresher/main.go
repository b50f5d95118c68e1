package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/code-forcer/reitsbackend/db"
	"github.com/code-forcer/reitsbackend/internal/repository"
	"github.com/code-forcer/reitsbackend/internal/service"
	"github.com/code-forcer/reitsbackend/pkg/llm"
	"github.com/code-forcer/reitsbackend/pkg/market"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	finnhubKey := os.Getenv("FINNHUB_API_KEY")
	if finnhubKey == "" {
		log.Fatal("FINNHUB_API_KEY is not set")
	}
	source := market.NewFinnhubSource(finnhubKey)

	provider, err := newProvider(ctx)
	if err != nil {
		log.Fatalf("error creating text provider: %v", err)
	}
	slog.Info("using text provider", "provider", provider.Name())

	// Separate rand sources: the two cycles may run concurrently and
	// *rand.Rand is not goroutine-safe.
	fetcher := market.NewFetcher(source, rand.New(rand.NewSource(time.Now().UnixNano())))

	svc := service.New(
		fetcher,
		llm.NewAnalyzer(provider),
		llm.NewNewsGenerator(provider),
		repository.NewREITRepository(db.DB),
		repository.NewNewsRepository(db.DB),
		market.DefaultTickers,
		rand.New(rand.NewSource(time.Now().UnixNano()+1)),
	)

	runRefresh := func() {
		slog.Info("starting REIT data update")
		result, err := svc.RefreshData(ctx)
		if err != nil {
			slog.Error("error updating REIT data", "error", err)
			return
		}
		slog.Info("REIT data updated", "fetched", result.Fetched,
			"upserted", result.Upserted, "upsert_failures", result.UpsertFailures)
	}

	runNews := func() {
		slog.Info("generating news")
		item, err := svc.GenerateNews(ctx)
		if err != nil {
			slog.Error("error generating news", "error", err)
			return
		}
		slog.Info("news generated", "news_id", item.ID, "title", item.Title)
	}

	c := cron.New()

	// Every 15 minutes during market hours, hourly otherwise, news twice
	// daily on weekdays.
	c.AddFunc("CRON_TZ=America/New_York */15 9-16 * * 1-5", runRefresh)
	c.AddFunc("0 * * * *", runRefresh)
	c.AddFunc("CRON_TZ=America/New_York 0 9,15 * * 1-5", runNews)
	c.Start()
	defer c.Stop()

	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		go listenTriggers(runRefresh, runNews)
	} else {
		slog.Info("REDIS_URL not set, on-demand triggers disabled")
	}

	// Run both procedures immediately on start.
	go runRefresh()
	go runNews()

	slog.Info("refresher started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("received shutdown signal, stopping refresher")
}

// listenTriggers consumes on-demand run requests pushed onto the Redis
// trigger queue.
func listenTriggers(runRefresh, runNews func()) {
	for {
		token, err := db.PopTrigger(5 * time.Second)
		if err == redis.Nil {
			continue
		}
		if err != nil {
			slog.Error("error popping trigger", "error", err)
			time.Sleep(time.Second)
			continue
		}

		switch token {
		case db.TriggerRefresh:
			runRefresh()
		case db.TriggerNews:
			runNews()
		default:
			slog.Warn("unknown trigger token", "token", token)
		}
	}
}

func newProvider(ctx context.Context) (llm.Provider, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return llm.NewGeminiProvider(ctx, key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIProvider(key), nil
	}
	log.Fatal("no text provider API key configured (GEMINI_API_KEY or OPENAI_API_KEY)")
	return nil, nil
}
