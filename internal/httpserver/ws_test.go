package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"henawys-art/internal/domain"
)

func TestOrdersSocketRequiresPhone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	router := gin.New()
	router.GET("/ws/orders", ordersSocketHandler(hub, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/ws/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without phone, got %d", rec.Code)
	}
}

func TestHubDeliversOrderUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	router := gin.New()
	router.GET("/ws/orders", ordersSocketHandler(hub, testLogger()))

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders?phone=%2B2010"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.subscriberCount("+2010") == 1 })

	hub.OrderUpdated(domain.Order{
		ID:       "ord-1",
		Customer: domain.CustomerInfo{Phone: "+2010"},
		Status:   domain.StatusConfirmed,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got domain.Order
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "ord-1" || got.Status != domain.StatusConfirmed {
		t.Fatalf("unexpected update: %+v", got)
	}

	// Updates for other customers must not reach this subscriber.
	hub.OrderUpdated(domain.Order{
		ID:       "ord-2",
		Customer: domain.CustomerInfo{Phone: "+2099"},
		Status:   domain.StatusShipped,
	})
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected no message for another customer's order")
	}

	conn.Close()
	waitFor(t, func() bool { return hub.subscriberCount("+2010") == 0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
