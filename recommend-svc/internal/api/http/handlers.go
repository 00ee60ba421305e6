package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"menurank/logging"
	"menurank/recommend-svc/internal/domain"
	"menurank/recommend-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type Handler struct {
	Recommendations service.RecommendationServiceInterface
	Favorites       service.FavoriteServiceInterface
	Sessions        service.SessionServiceInterface
}

func NewHandler(recs service.RecommendationServiceInterface, favorites service.FavoriteServiceInterface, sessions service.SessionServiceInterface) *Handler {
	return &Handler{Recommendations: recs, Favorites: favorites, Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/recommendations", h.recommend).Methods("POST")
	r.HandleFunc("/api/recommendations/explain", h.explain).Methods("POST")
	r.HandleFunc("/api/taste-profile", h.tasteProfile).Methods("POST")

	r.HandleFunc("/api/users/{userId}/favorites", h.listFavorites).Methods("GET")
	r.HandleFunc("/api/users/{userId}/favorites", h.addFavorite).Methods("POST")
	r.HandleFunc("/api/users/{userId}/favorites/{favoriteId}", h.deleteFavorite).Methods("DELETE")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{sessionId}/selections", h.addSelection).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}/qrcode", h.sessionQRCode).Methods("GET")
}

type contextPayload struct {
	HungerLevel      int      `json:"hunger_level" validate:"omitempty,min=1,max=5"`
	PreferenceLevel  int      `json:"preference_level" validate:"omitempty,min=1,max=5"`
	SelectedCravings []string `json:"selected_cravings"`
	SpiceTolerance   int      `json:"spice_tolerance" validate:"omitempty,min=1,max=5"`
}

type recommendPayload struct {
	Venue            domain.Venue             `json:"venue"`
	UserID           string                   `json:"user_id"`
	SessionID        string                   `json:"session_id"`
	Favorites        []domain.FavoriteDish    `json:"favorites" validate:"dive"`
	Restrictions     []string                 `json:"dietary_restrictions"`
	Context          contextPayload           `json:"context"`
	FriendSelections []domain.FriendSelection `json:"friend_selections" validate:"dive"`
}

func (p recommendPayload) toRequest() domain.Request {
	return domain.Request{
		Venue:        p.Venue,
		UserID:       p.UserID,
		SessionID:    p.SessionID,
		Favorites:    p.Favorites,
		Restrictions: p.Restrictions,
		Context: domain.ContextWeights{
			HungerLevel:      p.Context.HungerLevel,
			PreferenceLevel:  p.Context.PreferenceLevel,
			SelectedCravings: p.Context.SelectedCravings,
			SpiceTolerance:   p.Context.SpiceTolerance,
		},
		FriendSelections: p.FriendSelections,
	}
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var payload recommendPayload
	if !decode(w, r, &payload) {
		return
	}
	if payload.Venue.Ref() == "" {
		http.Error(w, domain.ErrVenueRequired.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.Recommendations.Recommend(r.Context(), payload.toRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVenueRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case service.IsCanceled(err):
			http.Error(w, "request canceled", http.StatusRequestTimeout)
		default:
			logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
			http.Error(w, err.Error(), http.StatusBadGateway)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) explain(w http.ResponseWriter, r *http.Request) {
	var rec domain.ScoredRecommendation
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.Name == "" {
		http.Error(w, domain.ErrDishRequired.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dish_name":   rec.Name,
		"total_score": rec.RecommendationScore,
		"factors":     h.Recommendations.Explain(rec),
	})
}

type tasteProfilePayload struct {
	Favorites []domain.FavoriteDish `json:"favorites" validate:"required,min=1,dive"`
}

func (h *Handler) tasteProfile(w http.ResponseWriter, r *http.Request) {
	var payload tasteProfilePayload
	if !decode(w, r, &payload) {
		return
	}
	profile, analyzed := h.Recommendations.AnalyzeTaste(r.Context(), payload.Favorites)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"taste_profile": profile,
		"analyzed":      analyzed,
	})
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorites.List(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	if favorites == nil {
		favorites = []domain.FavoriteDish{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var fav domain.FavoriteDish
	if !decode(w, r, &fav) {
		return
	}
	fav.UserID = mux.Vars(r)["userId"]
	if err := h.Favorites.Add(r.Context(), &fav); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["favoriteId"])
	if err != nil {
		http.Error(w, "invalid favorite id", http.StatusBadRequest)
		return
	}
	if err := h.Favorites.Delete(r.Context(), vars["userId"], id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createSessionPayload struct {
	Venue    domain.Venue `json:"venue"`
	HostName string       `json:"host_name"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var payload createSessionPayload
	if !decode(w, r, &payload) {
		return
	}
	session, err := h.Sessions.Create(r.Context(), payload.Venue, payload.HostName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) addSelection(w http.ResponseWriter, r *http.Request) {
	var sel domain.FriendSelection
	if !decode(w, r, &sel) {
		return
	}
	session, err := h.Sessions.AddSelection(r.Context(), mux.Vars(r)["sessionId"], sel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) sessionQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Sessions.QRCode(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// decode reads and validates a JSON body, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrVenueRequired), errors.Is(err, domain.ErrUserRequired), errors.Is(err, domain.ErrDishRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
