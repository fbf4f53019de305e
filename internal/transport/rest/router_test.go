package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carshop/internal/game"
	"carshop/internal/model"
	"carshop/internal/repository"
	"carshop/internal/service"
	"carshop/internal/transport/ws"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type userEnvelope struct {
	Data model.UserResponse `json:"data"`
}

type pageEnvelope struct {
	Data struct {
		Items      []json.RawMessage `json:"items"`
		Page       int               `json:"page"`
		PerPage    int               `json:"per_page"`
		TotalItems int64             `json:"total_items"`
		HasPrev    bool              `json:"has_prev"`
		HasNext    bool              `json:"has_next"`
	} `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	userRepo := repository.NewMemoryUserRepo()
	authSvc := service.NewAuthService(userRepo, []byte("test-secret"))
	if err := authSvc.SeedDefaultUser(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	bank, err := game.NewBank()
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	hub := ws.NewHub()

	return NewRouter(&Container{
		AuthService: authSvc,
		UserRepo:    userRepo,
		ProductRepo: repository.NewProductRepo(),
		PeopleRepo:  repository.NewPeopleRepo(),
		GameSession: game.NewSession(bank, hub),
		WSHub:       hub,
		ImagesDir:   t.TempDir(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginSeededUser(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, "POST", "/api/user/login", model.LoginRequest{Username: "thinhtrai1", Password: "1"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("seeded login status = %d: %s", rec.Code, rec.Body)
	}
	var resp userEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Data.Token
}

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/user/register", model.RegisterRequest{
		Username:  "alice",
		Password:  "secret",
		Email:     "alice@example.com",
		Firstname: "Alice",
		Lastname:  "Nguyen",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var resp userEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Username != "alice" || resp.Data.FirstName != "Alice" || resp.Data.Token == "" {
		t.Errorf("unexpected response: %+v", resp.Data)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newTestRouter(t)

	req := model.RegisterRequest{Username: "alice", Password: "secret", Email: "alice@example.com"}
	if rec := doJSON(t, router, "POST", "/api/user/register", req, ""); rec.Code != http.StatusOK {
		t.Fatalf("first register status = %d", rec.Code)
	}

	req.Email = "other@example.com"
	rec := doJSON(t, router, "POST", "/api/user/register", req, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register status = %d", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "400" || body.Message != "Username is already taken!" {
		t.Errorf("error body = %+v", body)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/user/login", model.LoginRequest{Username: "nobody", Password: "x"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "401" || body.Message != "Unauthorized" {
		t.Errorf("error body = %+v", body)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/users", "/api/peoples", "/api/peoples/0/5"} {
		rec := doJSON(t, router, "GET", path, nil, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, rec.Code)
			continue
		}
		var body errorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("GET %s: decode: %v", path, err)
			continue
		}
		if body.Code != "401" || body.Message != "Unauthorized" {
			t.Errorf("GET %s error body = %+v", path, body)
		}
	}
}

func TestProtectedRouteWithToken(t *testing.T) {
	router := newTestRouter(t)
	token := loginSeededUser(t, router)

	rec := doJSON(t, router, "GET", "/api/users", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Error("user listing leaks password hashes")
	}

	rec = doJSON(t, router, "GET", "/api/peoples", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("peoples status = %d", rec.Code)
	}
}

func TestProductPage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/product/0", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp pageEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Items) != 10 {
		t.Errorf("got %d items, want 10", len(resp.Data.Items))
	}
	if resp.Data.PerPage != 10 || resp.Data.TotalItems != 23 {
		t.Errorf("per_page=%d total_items=%d", resp.Data.PerPage, resp.Data.TotalItems)
	}
	if resp.Data.HasPrev || !resp.Data.HasNext {
		t.Errorf("has_prev=%v has_next=%v, want false/true", resp.Data.HasPrev, resp.Data.HasNext)
	}
}

func TestPeoplePageWithSize(t *testing.T) {
	router := newTestRouter(t)
	token := loginSeededUser(t, router)

	rec := doJSON(t, router, "GET", "/api/peoples/1/4", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp pageEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Items) != 4 || !resp.Data.HasPrev || !resp.Data.HasNext {
		t.Errorf("items=%d has_prev=%v has_next=%v", len(resp.Data.Items), resp.Data.HasPrev, resp.Data.HasNext)
	}
}

func TestProductQuery(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/product?search=porsche", nil, "")
	if rec.Code != http.StatusOK {
		t.Errorf("search status = %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/product?id=1", nil, "")
	if rec.Code != http.StatusOK {
		t.Errorf("id lookup status = %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/product?id=999", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Product not found" {
		t.Errorf("error body = %+v", body)
	}

	rec = doJSON(t, router, "GET", "/api/product", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("no-param status = %d", rec.Code)
	}
}

func TestWSHandshakeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/ws", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "401" || body.Message != "Unauthorized" {
		t.Errorf("error body = %+v", body)
	}
}
