package httpapi

import (
	"net/http"

	"menurank/logging"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(logging.RequestIDMiddleware)
	r.HandleFunc("/health", health).Methods("GET")
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "menu-svc"})
}

func StartServer(addr string, handler http.Handler) {
	logging.Info().Str("addr", addr).Msg("Menu Service starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logging.Fatal().Err(err).Msg("Menu Service stopped")
	}
}
