package main

import (
	"menurank/config"
	"menurank/logging"
	httpapi "menurank/rate-svc/internal/api/http"
	"menurank/rate-svc/internal/service"
	"menurank/rate-svc/internal/storage"

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
	writer := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.RatingsTopic)
	defer writer.Close()

	ratings := service.NewRatingService(
		storage.NewPostgresRepository(db),
		storage.NewRatingMarkers(rdb, cfg.Rating.MarkerTTL),
		storage.NewKafkaPublisher(writer),
	)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8082"
	}
	httpapi.StartServer(addr, httpapi.NewRouter(httpapi.NewHandler(ratings)))
}
