package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mitsutoshi/gmo-data-collector/config"
	"github.com/mitsutoshi/gmo-data-collector/internal/collector"
	"github.com/mitsutoshi/gmo-data-collector/internal/stream"
	"github.com/mitsutoshi/gmo-data-collector/logger"
	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/ratelimit"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"go.uber.org/zap"
)

const usage = `usage: collector <command> [flags]

commands:
  executions   mirror new executions into the sink
  positions    fold new executions into position checkpoints
  assets       record a balance snapshot
  backfill     import executions for order ids listed in a CSV file
  stream       mirror executions live over the private WebSocket
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd := os.Args[1]

	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	apiKey, apiSecret := cfg.GMO.Credentials(cfg.Log.Environment)
	rest := gmo.NewRESTClient(cfg.GMO.PublicURL, cfg.GMO.PrivateURL, apiKey, apiSecret, cfg.GMO.Timeout)

	pg, err := postgres.InitializeAndMigrate(cfg.Postgres, cfg.Log.Environment, true)
	if err != nil {
		log.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer pg.Close()

	syncer := collector.NewSyncer(rest, pg, cfg.Sync, log)
	ctx := context.Background()

	switch cmd {
	case "executions":
		n, err := syncer.SyncExecutions(ctx)
		if err != nil {
			log.Fatal("execution sync failed", zap.Error(err))
		}
		log.Info("execution sync done", zap.Int("rows", n))

	case "positions":
		n, err := syncer.SyncPositions(ctx)
		if err != nil {
			log.Fatal("position sync failed", zap.Error(err))
		}
		log.Info("position sync done", zap.Int("rows", n))

	case "assets":
		n, err := syncer.SnapshotAssets(ctx)
		if err != nil {
			log.Fatal("asset snapshot failed", zap.Error(err))
		}
		log.Info("asset snapshot done", zap.Int("rows", n))

	case "backfill":
		fs := flag.NewFlagSet("backfill", flag.ExitOnError)
		file := fs.String("file", "", "path to a CSV file of order ids (first column)")
		fs.Parse(os.Args[2:])
		if *file == "" {
			fmt.Fprintln(os.Stderr, "backfill requires -file")
			os.Exit(2)
		}

		ids, err := collector.ReadOrderIDs(*file)
		if err != nil {
			log.Fatal("failed to read order ids", zap.Error(err))
		}

		gate := ratelimit.NewIntervalGate(cfg.Backfill.Delay)
		n, err := syncer.Backfill(ctx, ids, gate)
		if err != nil {
			log.Fatal("backfill failed", zap.Error(err))
		}
		log.Info("backfill done", zap.Int("rows", n))

	case "stream":
		ws := gmo.NewWSClient(cfg.GMO.WSURL, rest, log)
		ws.SetMessageHandler(stream.MakeMessageHandler(log, stream.NewSeenBuffer(), pg))
		if err := ws.Connect(ctx); err != nil {
			log.Fatal("failed to connect WebSocket", zap.Error(err))
		}
		ws.Listen() // blocks until the process is killed

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}
