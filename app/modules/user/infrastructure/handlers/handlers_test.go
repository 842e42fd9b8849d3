package userhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	userservice "github.com/Black-And-White-Club/nascon/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRouter(svc *FakeService) http.Handler {
	h := NewUserHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	r.Post("/api/register", h.HandleRegister)
	r.Get("/api/users/{id}", h.HandleGetUser)
	r.Get("/api/judges", h.HandleListJudges)
	return r
}

func TestUserHandlers_HandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		regErr     error
		wantStatus int
	}{
		{name: "created", body: `{"fullName":"Ayesha","email":"a@x.com","password":"secret1","userType":"Participant"}`, wantStatus: http.StatusCreated},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"fullName":"Ayesha","email":"a@x.com","password":"secret1","userType":"Participant"}`, regErr: apperr.Conflict("email already in use"), wantStatus: http.StatusConflict},
		{name: "storage failure", body: `{"fullName":"Ayesha","email":"a@x.com","password":"secret1","userType":"Participant"}`, regErr: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{
				RegisterFunc: func(ctx context.Context, req userservice.RegisterRequest) (int64, error) {
					if tt.regErr != nil {
						return 0, tt.regErr
					}
					assert.Equal(t, "Ayesha", req.FullName)
					return 41, nil
				},
			}

			rr := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			switch tt.wantStatus {
			case http.StatusCreated:
				assert.EqualValues(t, 41, body["userId"])
			case http.StatusInternalServerError:
				assert.Equal(t, "internal server error", body["error"])
			}
		})
	}
}

func TestUserHandlers_HandleGetUser(t *testing.T) {
	svc := &FakeService{
		GetUserFunc: func(ctx context.Context, userID int64) (*userdb.User, error) {
			if userID == 5 {
				return &userdb.User{UserID: 5, FullName: "Bilal", Email: "b@x.com", PasswordHash: "hash", UserType: "Judge"}, nil
			}
			return nil, apperr.NotFound("user %d not found", userID)
		},
	}

	t.Run("found without hash", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/5", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hash")
		assert.Contains(t, rr.Body.String(), `"UserID":5`)
	})

	t.Run("missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/6", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandlers_HandleListJudges(t *testing.T) {
	svc := &FakeService{
		ListJudgesFunc: func(ctx context.Context) ([]userdb.User, error) {
			return []userdb.User{{UserID: 1, FullName: "J1", UserType: "Judge"}, {UserID: 2, FullName: "J2", UserType: "Judge"}}, nil
		},
	}

	rr := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/judges", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var judges []userdb.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&judges))
	assert.Len(t, judges, 2)
}
