package main

import (
	"net/http"
	"time"

	"menurank/config"
	"menurank/logging"
	httpapi "menurank/recommend-svc/internal/api/http"
	"menurank/recommend-svc/internal/llm"
	"menurank/recommend-svc/internal/service"
	"menurank/recommend-svc/internal/storage"

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

	repo := storage.NewPostgresRepository(db)
	menu := storage.NewCachedMenuSource(repo, storage.NewMenuCache(rdb, cfg.Recommend.MenuCacheTTL))
	sessions := storage.NewSessionStore(rdb, cfg.Recommend.SessionTTL)

	var analyzer service.TasteAnalyzer
	if cfg.LLM.Enabled() {
		client := llm.NewClient(cfg.LLM, &http.Client{Timeout: cfg.LLM.Timeout + 5*time.Second})
		analyzer = llm.NewTasteAnalyzer(client)
		logging.Info().Str("model", cfg.LLM.Model).Msg("taste analysis enabled")
	} else {
		logging.Warn().Msg("no language model key configured, recommendations use neutral taste signals")
	}

	recs := service.NewRecommendationService(menu, repo, sessions, analyzer, service.Options{
		TopN:                cfg.Recommend.TopN,
		PredictionBatch:     cfg.Recommend.PredictionBatch,
		PredictionThreshold: cfg.Recommend.PredictionThreshold,
		Jitter:              cfg.Recommend.Jitter,
	})
	favorites := service.NewFavoriteService(repo)
	sessionSvc := service.NewSessionService(sessions, service.DefaultQRGenerator{Size: 256}, cfg.Recommend.PublicURL)

	handler := httpapi.NewHandler(recs, favorites, sessionSvc)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8084"
	}
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
