package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/pventura/stockroom/internal/auth"
	api "github.com/pventura/stockroom/internal/http"
	handler "github.com/pventura/stockroom/internal/http/handlers"
	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/repo"
)

var (
	token string
	store *kv.MemoryStore
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos()

	r := api.NewRouter()
	var err error
	token, err = signupToken(r, "admin", "secret-pass")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	store = kv.NewMemoryStore()
	handler.SetInventoryRepo(repo.NewInventoryRepository(store))
	handler.SetUserStore(auth.NewUserStore(store))
}

// clearTenantData removes inventory entries but keeps accounts so the
// shared token stays valid across tests.
func clearTenantData() {
	ctx := context.Background()
	entries, _ := store.GetByPrefix(ctx, "user:")
	for _, e := range entries {
		_ = store.Delete(ctx, e.Key)
	}
}

func signupToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		return "", fmt.Errorf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.SignupResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path, bearer string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", token, p)
}
