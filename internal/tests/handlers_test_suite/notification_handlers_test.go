package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/pventura/stockroom/internal/http"
	handler "github.com/pventura/stockroom/internal/http/handlers"
)

func seedSampleData(t *testing.T, r http.Handler) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/init-sample-data", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("seeding failed with status %d: %s", w.Code, w.Body.String())
	}
}

func TestInitSampleDataHandler(t *testing.T) {
	t.Cleanup(clearTenantData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/init-sample-data", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var first handler.SeedResult
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !first.Success {
		t.Error("expected success true")
	}

	// Second call must be a no-op with a different message.
	w = doJSON(r, http.MethodPost, "/init-sample-data", token, nil)
	var second handler.SeedResult
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if second.Message == first.Message {
		t.Errorf("expected a no-op message on second seed, got %q twice", second.Message)
	}

	w = doJSON(r, http.MethodGet, "/products", token, nil)
	var products handler.ProductsResult
	json.NewDecoder(w.Body).Decode(&products)
	if len(products.Products) != 8 {
		t.Errorf("expected the 8-product sample catalog, got %d", len(products.Products))
	}
}

func TestGetNotificationsHandler_NewestFirst(t *testing.T) {
	t.Cleanup(clearTenantData)
	r := api.NewRouter()
	seedSampleData(t, r)

	w := doJSON(r, http.MethodGet, "/notifications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.NotificationsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Notifications) != 3 {
		t.Fatalf("expected 3 sample notifications, got %d", len(resp.Notifications))
	}
	for i := 1; i < len(resp.Notifications); i++ {
		if resp.Notifications[i-1].CreatedAt < resp.Notifications[i].CreatedAt {
			t.Errorf("notifications out of order at index %d: %q before %q",
				i, resp.Notifications[i-1].CreatedAt, resp.Notifications[i].CreatedAt)
		}
	}
}

func TestMarkNotificationReadHandler(t *testing.T) {
	t.Cleanup(clearTenantData)
	r := api.NewRouter()
	seedSampleData(t, r)

	w := doJSON(r, http.MethodGet, "/notifications", token, nil)
	var list handler.NotificationsResult
	json.NewDecoder(w.Body).Decode(&list)
	if len(list.Notifications) == 0 {
		t.Fatal("no notifications to mark")
	}
	target := list.Notifications[0]

	w = doJSON(r, http.MethodPut, "/notifications/"+target.ID+"/read", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.NotificationResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.Notification.Read {
		t.Error("expected read true")
	}
	if resp.Notification.ReadAt == "" {
		t.Error("expected readAt to be stamped")
	}

	// Marking again succeeds (idempotent).
	w = doJSON(r, http.MethodPut, "/notifications/"+target.ID+"/read", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on repeated mark-read, got %d", w.Code)
	}
}

func TestMarkNotificationReadHandler_NotFound(t *testing.T) {
	t.Cleanup(clearTenantData)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/notifications/user:nobody:notification:123/read", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
