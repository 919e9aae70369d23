package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"innkeep/internal/hotel/repository"
	"innkeep/internal/hotel/service"
	"innkeep/internal/hotel/validator"
	"innkeep/pkg/config"
	"innkeep/pkg/events"
	"innkeep/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	log := logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: logger.FormatText,
		Output: io.Discard,
	})
	cfg := &config.Config{Log: log}
	store := repository.NewStore()
	svc := service.NewHotelService(store, validator.NewHotelValidator(log), events.NopPublisher{}, cfg)

	router := httprouter.New()
	NewHotelHandler(svc, log).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func TestSetRoomEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/api/v1/rooms/1",
		`{"room_type":"STANDARD","price_per_night":1000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodPut, "/api/v1/rooms/abc",
		`{"room_type":"STANDARD","price_per_night":1000}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer room number: status = %d, want 400", rec.Code)
	}

	rec = do(t, router, http.MethodPut, "/api/v1/rooms/1",
		`{"room_type":"PENTHOUSE","price_per_night":1000}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown room type: status = %d, want 422", rec.Code)
	}

	rec = do(t, router, http.MethodPut, "/api/v1/rooms/1", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec.Code)
	}
}

func TestSetUserEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/users", `{"user_id":1,"balance":5000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	// Repeated creation succeeds and keeps the original balance.
	rec = do(t, router, http.MethodPost, "/api/v1/users", `{"user_id":1,"balance":99999}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("repeat status = %d, want 201", rec.Code)
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["balance"].(float64) != 5000 {
		t.Errorf("repeat create changed balance: %v", data["balance"])
	}

	rec = do(t, router, http.MethodPost, "/api/v1/users", `{"user_id":1,"balance":-5}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative balance: status = %d, want 422", rec.Code)
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPut, "/api/v1/rooms/1", `{"room_type":"STANDARD","price_per_night":1000}`)
	do(t, router, http.MethodPost, "/api/v1/users", `{"user_id":1,"balance":5000}`)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"user_id":1,"room_number":1,"check_in":"2026-07-07","check_out":"2026-07-08"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "overlap",
			body:       `{"user_id":1,"room_number":1,"check_in":"2026-07-08","check_out":"2026-07-09"}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "insufficient funds",
			body:       `{"user_id":1,"room_number":1,"check_in":"2026-08-01","check_out":"2026-08-31"}`,
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:       "unknown user",
			body:       `{"user_id":9,"room_number":1,"check_in":"2026-09-01","check_out":"2026-09-02"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown room",
			body:       `{"user_id":1,"room_number":9,"check_in":"2026-09-01","check_out":"2026-09-02"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "inverted dates",
			body:       `{"user_id":1,"room_number":1,"check_in":"2026-09-02","check_out":"2026-09-01"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed date",
			body:       `{"user_id":1,"room_number":1,"check_in":"07/07/2026","check_out":"2026-07-08"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/bookings", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestListEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/rooms", "/api/v1/users", "/api/v1/bookings"} {
		rec := do(t, router, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["count"].(float64) != 0 {
			t.Errorf("GET %s: count = %v, want 0", path, body["count"])
		}
	}

	do(t, router, http.MethodPut, "/api/v1/rooms/1", `{"room_type":"STANDARD","price_per_night":1000}`)
	do(t, router, http.MethodPut, "/api/v1/rooms/2", `{"room_type":"JUNIOR","price_per_night":2000}`)

	rec := do(t, router, http.MethodGet, "/api/v1/rooms", "")
	body := decodeBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Fatalf("count = %v, want 2", body["count"])
	}
	rooms := body["data"].([]any)
	first := rooms[0].(map[string]any)
	if first["room_number"].(float64) != 2 {
		t.Errorf("listing must be newest first, got room %v", first["room_number"])
	}
}
