package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	bookingRepo "travelagent/database/repository/booking"
	"travelagent/handlers"
	"travelagent/models"
	"travelagent/routes"
	"travelagent/services/booking"
	ai "travelagent/services/intelligence"
	"travelagent/services/inventory"
	"travelagent/services/oauth"
	"travelagent/services/payment"
	"travelagent/services/search"
	"travelagent/services/tasks"
	"travelagent/services/user"

	"github.com/gin-gonic/gin"
)

type fakeFeed struct {
	records []models.AviationstackFlight
	err     error
}

func (f *fakeFeed) FetchFlights(ctx context.Context, q models.FlightQuery) ([]models.AviationstackFlight, error) {
	return f.records, f.err
}

type fakeGateway struct {
	amount int64
}

func (g *fakeGateway) Name() string      { return "fake" }
func (g *fakeGateway) PublicKey() string { return "pk_fake" }

func (g *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*models.PaymentOrder, error) {
	g.amount = amountMinor
	return &models.PaymentOrder{ID: "order_1", Amount: amountMinor, Currency: currency, Receipt: receipt}, nil
}

func (g *fakeGateway) VerifyPayment(ctx context.Context, v models.PaymentVerification) (*models.VerificationResult, error) {
	return &models.VerificationResult{Success: true, PaymentID: v.PaymentID, OrderID: v.OrderID}, nil
}

type echoModel struct{}

func (echoModel) Reply(ctx context.Context, history []models.ChatTurn, prompt string) (string, error) {
	return "echo: " + prompt, nil
}

type testServer struct {
	router  *gin.Engine
	draws   *int
	gateway *fakeGateway
}

func newTestServer(t *testing.T, feed inventory.FlightFeed) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	draws := 0
	gen := inventory.NewGenerator(inventory.WithRandSource(func() *rand.Rand {
		draws++
		return rand.New(rand.NewSource(int64(draws)))
	}))
	gateway := &fakeGateway{}

	hb := &handlers.HandlerBundle{
		Search:  handlers.NewSearchHandler(search.NewSearchService(gen, feed)),
		Booking: handlers.NewBookingHandler(booking.NewBookingService(bookingRepo.NewMemoryBookingRepo(), tasks.NoopEnqueuer{}, nil)),
		Payment: handlers.NewPaymentHandler(payment.NewPaymentService(gateway, nil)),
		AI:      handlers.NewAIHandler(ai.NewChatService(echoModel{}, ai.NewMemoryContextStore(0), 0, nil)),
		User:    handlers.NewUserHandler(user.NewUserService()),
		Uber:    handlers.NewUberHandler(oauth.NewUberAuth("", "", "", oauth.NewTokenSlot())),
		Health:  handlers.NewHealthHandler(nil),
	}
	r := gin.New()
	routes.RegisterRoutes(r, hb, "")
	return &testServer{router: r, draws: &draws, gateway: gateway}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, w, &body)
	return body.Detail
}

func TestSearchValidationPrecedesGeneration(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"flights without to", "/api/flights/search", `{"from":"BOM"}`},
		{"hotels without location", "/api/hotels/search", `{"guests":2}`},
		{"hotels negative rooms", "/api/hotels/search", `{"location":"Goa","rooms":-1}`},
		{"hotels party overflowing the total", "/api/hotels/search", `{"location":"Nairobi","guests":4294967296,"rooms":4294967296}`},
		{"hotels too many guests", "/api/hotels/search", `{"location":"Nairobi","guests":51,"rooms":1}`},
		{"hotels fractional rooms", "/api/hotels/search", `{"location":"Nairobi","rooms":1.5}`},
		{"transport without dropoff", "/api/transport/search", `{"pickup":"Airport"}`},
		{"malformed body", "/api/hotels/search", `{"location":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, body %s", w.Code, w.Body.String())
			}
			if detail(t, w) == "" {
				t.Error("empty detail")
			}
		})
	}
	if *s.draws != 0 {
		t.Errorf("generator drew %d random sources for invalid requests", *s.draws)
	}
}

func TestTransportSearch(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/transport/search", `{"pickup":"Airport","dropoff":"Downtown","type":"taxi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var offers []models.TransportOffer
	decode(t, w, &offers)
	if len(offers) < 4 || len(offers) > 8 {
		t.Fatalf("got %d offers", len(offers))
	}
	price := regexp.MustCompile(`^₹\d+$`)
	for i, o := range offers {
		if !price.MatchString(o.Price) {
			t.Errorf("offer %d price %q", i, o.Price)
		}
		if o.Pickup != "Airport" || o.Dropoff != "Downtown" {
			t.Errorf("offer %d route %s -> %s", i, o.Pickup, o.Dropoff)
		}
		if i > 0 && offers[i-1].PriceAmount > o.PriceAmount {
			t.Errorf("offers not sorted at %d", i)
		}
	}
}

func TestHotelSearchReturnsArray(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/hotels/search", `{"location":"Goa","guests":"2","rooms":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var hotels []models.HotelOffer
	decode(t, w, &hotels)
	if len(hotels) == 0 {
		t.Fatal("no hotels")
	}
}

func TestFlightSearch(t *testing.T) {
	t.Run("upstream fault is 502", func(t *testing.T) {
		s := newTestServer(t, &fakeFeed{err: errors.New("dial tcp: connection refused")})
		w := s.do(http.MethodPost, "/api/flights/search", `{"from":"BOM","to":"DEL"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status %d, body %s", w.Code, w.Body.String())
		}
		if detail(t, w) == "" {
			t.Error("empty detail")
		}
	})

	t.Run("empty upstream falls back", func(t *testing.T) {
		s := newTestServer(t, &fakeFeed{records: []models.AviationstackFlight{}})
		w := s.do(http.MethodPost, "/api/flights/search", `{"from":"BOM","to":"DEL","passengers":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, body %s", w.Code, w.Body.String())
		}
		var body struct {
			Flights []models.FlightOffer `json:"flights"`
		}
		decode(t, w, &body)
		if len(body.Flights) < 6 || len(body.Flights) > 10 {
			t.Fatalf("got %d flights", len(body.Flights))
		}
		if body.Flights[0].Source != models.SourceSynthetic {
			t.Errorf("source %q", body.Flights[0].Source)
		}
	})
}

func TestSmokeEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	for _, domain := range []string{"flights", "hotels", "transport"} {
		w := s.do(http.MethodGet, "/api/"+domain+"/health", "")
		var health map[string]string
		decode(t, w, &health)
		if health["status"] != "healthy" || health["service"] != domain {
			t.Errorf("%s health %v", domain, health)
		}
	}

	w := s.do(http.MethodGet, "/api/hotels/test", "")
	var hotels []models.HotelOffer
	decode(t, w, &hotels)
	if len(hotels) != 3 {
		t.Errorf("hotel sample has %d entries", len(hotels))
	}
}

func TestFixtureLookups(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/api/flights/1", http.StatusOK},
		{"/api/flights/99", http.StatusNotFound},
		{"/api/transport/2", http.StatusOK},
		{"/api/transport/99", http.StatusNotFound},
		{"/api/transport/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := s.do(http.MethodGet, tt.path, ""); w.Code != tt.want {
			t.Errorf("GET %s: status %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestBookingLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/bookings/", `{"type":"hotel","id":"goa_hotel_1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created models.Booking
	decode(t, w, &created)
	if created.ID != 1 || created.Status != "confirmed" || created.ItemID != "goa_hotel_1" {
		t.Errorf("created %+v", created)
	}

	if w := s.do(http.MethodPost, "/api/bookings/", `{"type":"cruise","id":"x"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown type: status %d", w.Code)
	}

	if w := s.do(http.MethodGet, "/api/bookings/1", ""); w.Code != http.StatusOK {
		t.Errorf("get: status %d", w.Code)
	}
	if w := s.do(http.MethodDelete, "/api/bookings/1", ""); w.Code != http.StatusOK {
		t.Errorf("cancel: status %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/bookings/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("get after cancel: status %d", w.Code)
	}
}

func TestCreateOrder(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/payments/create-order", `{"amount":1500.25,"booking_type":"flight"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if s.gateway.amount != 150025 {
		t.Errorf("gateway got %d minor units", s.gateway.amount)
	}

	w = s.do(http.MethodPost, "/api/payments/create-order?amount=20", "")
	if w.Code != http.StatusOK || s.gateway.amount != 2000 {
		t.Errorf("query amount: status %d, minor %d", w.Code, s.gateway.amount)
	}

	if w := s.do(http.MethodPost, "/api/payments/create-order", `{"amount":0}`); w.Code != http.StatusBadRequest {
		t.Errorf("zero amount: status %d", w.Code)
	}
}

func TestChat(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/ai/chat", `{"message":"hi"}`)
	var resp models.ChatResponse
	decode(t, w, &resp)
	if w.Code != http.StatusOK || !resp.Success || resp.Response != "echo: hi" {
		t.Errorf("status %d, response %+v", w.Code, resp)
	}

	w = s.do(http.MethodGet, "/api/ai/health", "")
	var health map[string]string
	decode(t, w, &health)
	if health["service"] != "Gemini AI" {
		t.Errorf("health %v", health)
	}
}

func TestUberNotConfigured(t *testing.T) {
	s := newTestServer(t, nil)

	if w := s.do(http.MethodGet, "/api/transport/uber/login", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("login: status %d", w.Code)
	}
	w := s.do(http.MethodGet, "/api/transport/uber/status", "")
	var status oauth.UberStatus
	decode(t, w, &status)
	if status.Configured || status.Connected {
		t.Errorf("status %+v", status)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodGet, "/api/nothing", "")
	if w.Code != http.StatusNotFound || detail(t, w) != "Not Found" {
		t.Errorf("status %d, body %s", w.Code, w.Body.String())
	}
}
