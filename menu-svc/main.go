package main

import (
	"menurank/config"
	"menurank/logging"
	httpapi "menurank/menu-svc/internal/api/http"
	"menurank/menu-svc/internal/service"
	"menurank/menu-svc/internal/storage"

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

	menu := service.NewMenuService(
		storage.NewPostgresRepository(db),
		storage.NewRedisMenuCache(rdb),
	)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8081"
	}
	httpapi.StartServer(addr, httpapi.NewRouter(httpapi.NewHandler(menu)))
}
