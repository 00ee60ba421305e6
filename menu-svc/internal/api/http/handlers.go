package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"menurank/logging"
	"menurank/menu-svc/internal/domain"
	"menurank/menu-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

var validate = validator.New()

type Handler struct {
	Menu service.MenuServiceInterface
}

func NewHandler(menu service.MenuServiceInterface) *Handler {
	return &Handler{Menu: menu}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items/import", h.importMenu).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items/{itemId:[0-9]+}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items/{itemId:[0-9]+}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantRef}/menu-items/{itemId:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantRef = mux.Vars(r)["restaurantRef"]
	item.Normalize()
	if err := validate.Struct(item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), mux.Vars(r)["restaurantRef"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["itemId"])
	item, err := h.Menu.Get(r.Context(), vars["restaurantRef"], id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["itemId"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id
	item.RestaurantRef = vars["restaurantRef"]
	item.Normalize()
	if err := validate.Struct(item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["itemId"])
	if err := h.Menu.Delete(r.Context(), vars["restaurantRef"], id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type importPayload struct {
	Items []domain.MenuItem `json:"items" validate:"required,min=1,dive"`
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	var payload importPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	for i := range payload.Items {
		payload.Items[i].Normalize()
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.Menu.Import(r.Context(), mux.Vars(r)["restaurantRef"], payload.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Menu item not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateItem):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("menu request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
