package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"irbana.com/pontosync/config"
	"irbana.com/pontosync/infrastructure/communication"
	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/kv"
	"irbana.com/pontosync/offline"
)

func main() {
	configPath := flag.String("config", "pontosync.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var store kv.Store
	if cfg.StoragePath != "" {
		sqliteStore, err := kv.OpenSQLite(cfg.StoragePath)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		fmt.Printf("using storage: %s\n", cfg.StoragePath)
	} else {
		store = kv.NewMemoryStore()
		fmt.Println("no storage_path configured, queues are in-memory only")
	}

	client := v1.NewClient(cfg.BackendURL, cfg.AuthToken)
	queue := offline.NewQueue(store)
	cache := offline.NewCache(store, cfg.CacheTTL())

	var notifier offline.Notifier
	if os.Getenv("SLACK_BOT_TOKEN") != "" {
		notifier = communication.ConnectSlack()
	}

	replayer := offline.NewReplayer(client, queue, cache, notifier)
	monitor := offline.NewMonitor(offline.HTTPProbe(cfg.BackendURL, cfg.PollInterval()), cfg.PollInterval())
	agent := offline.NewAgent(client, monitor, queue, cache, replayer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("pontosyncd watching %s every %s, %d action(s) pending\n",
		cfg.BackendURL, cfg.PollInterval(), agent.Pendentes())
	agent.Watch(ctx)

	fmt.Printf("shutting down, %d action(s) still pending\n", agent.Pendentes())
}
