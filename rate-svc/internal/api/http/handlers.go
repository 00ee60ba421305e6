package httpapi

import (
	"errors"
	"net/http"

	"menurank/logging"
	"menurank/rate-svc/internal/domain"
	"menurank/rate-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type Handler struct {
	Ratings service.RatingServiceInterface
}

func NewHandler(ratings service.RatingServiceInterface) *Handler {
	return &Handler{Ratings: ratings}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantRef}/dishes/{dishName}/ratings", h.createRating).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantRef}/dishes/{dishName}/ratings", h.getDishRatings).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantRef}/ratings/distribution", h.getDistribution).Methods("GET")
	r.HandleFunc("/api/ratings", h.createBulkRatings).Methods("POST")
}

func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	var rating domain.Rating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	rating.RestaurantRef = vars["restaurantRef"]
	rating.DishName = vars["dishName"]
	if err := validate.Struct(rating); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Ratings.CreateOrUpdate(r.Context(), &rating); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *Handler) getDishRatings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ratings, err := h.Ratings.ListDishRatings(r.Context(), vars["restaurantRef"], vars["dishName"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *Handler) getDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Ratings.Distribution(r.Context(), mux.Vars(r)["restaurantRef"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, distribution)
}

type bulkRatingsPayload struct {
	UserID        string `json:"user_id" validate:"required"`
	RestaurantRef string `json:"restaurant_ref" validate:"required"`
	Ratings       []struct {
		DishName string `json:"dish_name"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	} `json:"ratings" validate:"required,min=1"`
}

type ratingResult struct {
	DishName string `json:"dish_name"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// createBulkRatings rates every dish from one visit. Each dish is stored on
// its own; a failure is reported per dish and does not stop the rest.
func (h *Handler) createBulkRatings(w http.ResponseWriter, r *http.Request) {
	var payload bulkRatingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing user_id, restaurant_ref or ratings", http.StatusBadRequest)
		return
	}

	results := make([]ratingResult, 0, len(payload.Ratings))
	successCount := 0

	for _, incoming := range payload.Ratings {
		rating := domain.Rating{
			RestaurantRef: payload.RestaurantRef,
			DishName:      incoming.DishName,
			UserID:        payload.UserID,
			Rating:        incoming.Rating,
			Comment:       incoming.Comment,
		}

		err := validate.Struct(rating)
		if err == nil {
			err = h.Ratings.CreateOrUpdate(r.Context(), &rating)
		}
		if err != nil {
			results = append(results, ratingResult{
				DishName: incoming.DishName,
				Status:   "error",
				Message:  err.Error(),
			})
			continue
		}

		successCount++
		results = append(results, ratingResult{
			DishName: incoming.DishName,
			Status:   "ok",
		})
	}

	status := http.StatusCreated
	if successCount == 0 {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]interface{}{
		"processed": results,
		"created":   successCount,
		"failed":    len(results) - successCount,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDishNotOnMenu):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDuplicateRating):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("rating failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
