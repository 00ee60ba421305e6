package gateway

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"menurank/config"
	"menurank/logging"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sony/gobreaker/v2"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type upstream struct {
	name    string
	baseURL string
	cb      *gobreaker.CircuitBreaker[*http.Response]
}

type Gateway struct {
	recommend *upstream
	menu      *upstream
	rate      *upstream
	client    HTTPClient
}

func NewGateway(cfg config.GatewayConfig, client HTTPClient) *Gateway {
	return &Gateway{
		recommend: newUpstream("recommend-svc", cfg.RecommendSvcURL),
		menu:      newUpstream("menu-svc", cfg.MenuSvcURL),
		rate:      newUpstream("rate-svc", cfg.RateSvcURL),
		client:    client,
	}
}

// newUpstream trips after consecutive transport failures so a dead service
// answers 503 at once instead of holding every caller until its timeout.
func newUpstream(name, baseURL string) *upstream {
	return &upstream{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		cb: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     15 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Warn().Str("upstream", name).Str("from", from.String()).Str("to", to.String()).Msg("gateway circuit breaker state change")
			},
		}),
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, target *upstream) {
	log := logging.Ctx(r.Context())
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("upstream", target.name).Msg("proxy")

	url := target.baseURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to create upstream request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if id := logging.RequestIDFromContext(r.Context()); id != "" {
		req.Header.Set(logging.RequestIDHeader, id)
	}

	resp, err := target.cb.Execute(func() (*http.Response, error) {
		return g.client.Do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			http.Error(w, target.name+" is unavailable", http.StatusServiceUnavailable)
			return
		}
		log.Error().Err(err).Str("upstream", target.name).Msg("failed to proxy request")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Error().Err(err).Msg("failed to copy response")
	}
}

func (g *Gateway) route(path string) *upstream {
	switch {
	case strings.HasPrefix(path, "/api/recommendations"),
		path == "/api/taste-profile",
		strings.HasPrefix(path, "/api/users/"),
		path == "/api/sessions",
		strings.HasPrefix(path, "/api/sessions/"):
		return g.recommend
	case path == "/api/ratings",
		strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/ratings"),
		strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/ratings/distribution"):
		return g.rate
	case strings.HasPrefix(path, "/api/restaurants/") && strings.Contains(path, "/menu-items"):
		return g.menu
	}
	return nil
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.route(r.URL.Path)
	if target == nil {
		logging.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(logging.RequestIDMiddleware)
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
