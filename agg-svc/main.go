package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"menurank/agg-svc/internal/service"
	"menurank/agg-svc/internal/storage"
	"menurank/config"
	"menurank/logging"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	logging.Init(cfg.Logging)

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, cfg.Kafka.RatingsTopic, cfg.Kafka.GroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(db, rdb)).Start(ctx)
}
