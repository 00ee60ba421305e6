package httpapi_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "menurank/menu-svc/internal/api/http"
	"menurank/menu-svc/internal/domain"
	"menurank/menu-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serve(t *testing.T, prepare func(*mocks.MenuServiceInterface), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	svc := mocks.NewMenuServiceInterface(t)
	prepare(svc)
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	httpapi.NewRouter(httpapi.NewHandler(svc)).ServeHTTP(w, req)
	return w
}

func TestMenuItemHandlers(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		prepare  func(*mocks.MenuServiceInterface)
		wantCode int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/restaurants/R1/menu-items",
			body:   `{"name":"Pad Thai","category":"Main"}`,
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.MenuItem) bool {
					return i.RestaurantRef == "R1" && i.Name == "Pad Thai" && i.Category == "main"
				})).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "create without name",
			method:   http.MethodPost,
			target:   "/api/restaurants/R1/menu-items",
			body:     `{"description":"mystery"}`,
			prepare:  func(m *mocks.MenuServiceInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "create with unknown category",
			method:   http.MethodPost,
			target:   "/api/restaurants/R1/menu-items",
			body:     `{"name":"Pho","category":"soup"}`,
			prepare:  func(m *mocks.MenuServiceInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			target: "/api/restaurants/R1/menu-items",
			body:   `{"name":"Pho"}`,
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateItem).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/api/restaurants/R1/menu-items/7",
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Get", mock.Anything, "R1", 7).Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/api/restaurants/R1/menu-items/7",
			body:   `{"name":"Pho Tai","customer_sentiment":"positive","mention_frequency":3}`,
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.MenuItem) bool { return i.ID == 7 && i.Name == "Pho Tai" })).Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "update with negative frequency",
			method:   http.MethodPut,
			target:   "/api/restaurants/R1/menu-items/7",
			body:     `{"name":"Pho","mention_frequency":-1}`,
			prepare:  func(m *mocks.MenuServiceInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/restaurants/R1/menu-items/7",
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Delete", mock.Anything, "R1", 7).Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "delete failure",
			method: http.MethodDelete,
			target: "/api/restaurants/R1/menu-items/7",
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Delete", mock.Anything, "R1", 7).Return(errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "import",
			method: http.MethodPost,
			target: "/api/restaurants/R1/menu-items/import",
			body:   `{"items":[{"name":"Pho"},{"name":"Banh Mi","category":"main"}]}`,
			prepare: func(m *mocks.MenuServiceInterface) {
				m.On("Import", mock.Anything, "R1", mock.Anything).Return(2, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "import empty",
			method:   http.MethodPost,
			target:   "/api/restaurants/R1/menu-items/import",
			body:     `{"items":[]}`,
			prepare:  func(m *mocks.MenuServiceInterface) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := serve(t, testCase.prepare, testCase.method, testCase.target, testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestListMenuItemsReturnsEmptyArray(t *testing.T) {
	w := serve(t, func(m *mocks.MenuServiceInterface) {
		m.On("List", mock.Anything, "R1").Return(nil, nil).Once()
	}, http.MethodGet, "/api/restaurants/R1/menu-items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
