package main

import (
	"net/http"

	"menurank/api-gateway/internal/gateway"
	"menurank/config"
	"menurank/logging"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	logging.Init(cfg.Logging)

	gw := gateway.NewGateway(cfg.Gateway, &http.Client{Timeout: cfg.Gateway.Timeout})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logging.Info().Str("addr", addr).Msg("API Gateway starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logging.Fatal().Err(err).Msg("API Gateway stopped")
	}
}
