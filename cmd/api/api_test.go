package main

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/zazianopizza/zaziano/internal/auth"
	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/payment"
	"github.com/zazianopizza/zaziano/internal/service"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	orders map[int64]*domain.Order
}

func (r *stubOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *stubOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.Status = status
	copied := *order
	return &copied, nil
}

func (r *stubOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) AttachCheckoutSession(ctx context.Context, id int64, sessionID string) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.StripeSessionID = sessionID
	return nil
}

func (r *stubOrderRepo) MarkRefunded(ctx context.Context, id int64, refundID, paymentIntentID string, refundedAt time.Time) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.Status = domain.StatusCancelled
	order.StripeRefundID = refundID
	order.StripePaymentIntentID = paymentIntentID
	order.RefundedAt = &refundedAt
	copied := *order
	return &copied, nil
}

type stubAuditRepo struct{}

func (r *stubAuditRepo) Create(ctx context.Context, audit *domain.OrderStatusAudit) error {
	return nil
}

func (r *stubAuditRepo) GetByOrderID(ctx context.Context, orderID int64, limit int) ([]domain.OrderStatusAudit, error) {
	return nil, nil
}

type stubOpeningHoursRepo struct {
	hours domain.OpeningHours
}

func (r *stubOpeningHoursRepo) EnsureDefault(ctx context.Context) error {
	return nil
}

func (r *stubOpeningHoursRepo) Get(ctx context.Context) (*domain.OpeningHours, error) {
	copied := r.hours
	return &copied, nil
}

func (r *stubOpeningHoursRepo) Update(ctx context.Context, schedule domain.WeekSchedule) (*domain.OpeningHours, error) {
	r.hours = domain.OpeningHours{Schedule: schedule, UpdatedAt: time.Now()}
	copied := r.hours
	return &copied, nil
}

type stubPaymentProvider struct{}

func (p *stubPaymentProvider) CreateCheckoutSession(ctx context.Context, lines []payment.Line, customerEmail string, orderID int64) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{ID: "cs_test"}, nil
}

func (p *stubPaymentProvider) GetSession(ctx context.Context, sessionID string) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{ID: sessionID, PaymentStatus: payment.PaymentCompleted}, nil
}

func (p *stubPaymentProvider) FindRefund(ctx context.Context, paymentIntentID string) (*payment.Refund, error) {
	return nil, nil
}

func (p *stubPaymentProvider) CreateRefund(ctx context.Context, paymentIntentID string) (*payment.Refund, error) {
	return &payment.Refund{ID: "re_test"}, nil
}

func newTestApplication(t *testing.T) (*application, *stubOrderRepo) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	repo := &stubOrderRepo{orders: map[int64]*domain.Order{}}

	authenticator, err := auth.New(auth.Config{
		Username: "admin",
		Password: "geheim",
		Secret:   "test-secret",
	})
	if err != nil {
		t.Fatalf("auth.New() error = %v", err)
	}

	app := &application{
		config: config{
			addr:      ":0",
			uploadDir: t.TempDir(),
		},
		logger:           logger,
		authenticator:    authenticator,
		payments:         &stubPaymentProvider{},
		openingHoursRepo: &stubOpeningHoursRepo{hours: domain.OpeningHours{Schedule: domain.DefaultWeekSchedule()}},
		orderService:     service.NewOrderService(repo, &stubAuditRepo{}, &stubPaymentProvider{}, nil, logger),
	}

	return app, repo
}

func adminToken(t *testing.T, app *application) string {
	t.Helper()

	token, err := app.authenticator.Login("admin", "geheim")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return token
}

func TestCreateOrderEndpoint(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	body := `{
		"customer": {"firstName": "A", "lastName": "B", "phone": "1"},
		"items": [{"id": 1, "name": "Pizza", "quantity": 1, "basePrice": 10, "totalPrice": 10, "extras": []}],
		"totalPrice": 10
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Message string       `json:"message"`
		Order   domain.Order `json:"order"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if response.Message != "Anfrage gespeichert" {
		t.Errorf("message = %q", response.Message)
	}
	if response.Order.ID == 0 {
		t.Error("order id was not assigned")
	}
	if response.Order.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", response.Order.Status)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	// no items, no total
	body := `{"customer": {"firstName": "A", "lastName": "B", "phone": "1"}}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteMissingOrderReturns404(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/12345", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, app))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["error"] != "Anfrage nicht gefunden" {
		t.Errorf("error = %q", response["error"])
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Token abc"},
		{"invalid token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAdminLogin(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username": "admin", "password": "falsch"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["error"] != "Falscher Benutzername oder falsches Passwort" {
		t.Errorf("error = %q", response["error"])
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username": "admin", "password": "geheim"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var login AdminLoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&login); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !login.Success || login.Token == "" {
		t.Errorf("login response = %+v", login)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	app, repo := newTestApplication(t)
	mux := app.mount()

	repo.orders[100] = &domain.Order{ID: 100, Status: domain.StatusPending}
	token := adminToken(t, app)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/100",
		strings.NewReader(`{"status": "bogus"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus status: code = %d, want 400", rec.Code)
	}
	if repo.orders[100].Status != domain.StatusPending {
		t.Errorf("stored status changed to %q", repo.orders[100].Status)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/orders/100",
		strings.NewReader(`{"status": "confirmed"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Message string       `json:"message"`
		Order   domain.Order `json:"order"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Message != "Aktualisiert" || response.Order.Status != domain.StatusConfirmed {
		t.Errorf("response = %+v", response)
	}
}

func TestOpeningHoursRoundTrip(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()
	token := adminToken(t, app)

	body := `{
		"monday":    {"open": false, "openingTime": "12:00", "closingTime": "22:00", "breakStart": null, "breakEnd": null},
		"tuesday":   {"open": true, "openingTime": "11:00", "closingTime": "23:00", "breakStart": "14:30", "breakEnd": "17:00"},
		"wednesday": {"open": true, "openingTime": "11:00", "closingTime": "23:00", "breakStart": null, "breakEnd": null},
		"thursday":  {"open": true, "openingTime": "11:00", "closingTime": "23:00", "breakStart": null, "breakEnd": null},
		"friday":    {"open": true, "openingTime": "11:00", "closingTime": "00:59", "breakStart": null, "breakEnd": null},
		"saturday":  {"open": true, "openingTime": "11:00", "closingTime": "00:59", "breakStart": null, "breakEnd": null},
		"sunday":    {"open": true, "openingTime": "11:00", "closingTime": "21:00", "breakStart": null, "breakEnd": null}
	}`

	req := httptest.NewRequest(http.MethodPut, "/api/opening-hours", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/opening-hours", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got domain.WeekSchedule
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	var want domain.WeekSchedule
	if err := json.Unmarshal([]byte(body), &want); err != nil {
		t.Fatalf("decode request body: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("schedule after round trip = %+v, want %+v", got, want)
	}
}

func TestUpdateOpeningHoursRejectsPartialWeek(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	body := `{"monday": {"open": true, "openingTime": "11:00", "closingTime": "22:00"}}`

	req := httptest.NewRequest(http.MethodPut, "/api/opening-hours", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t, app))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func uploadImage(t *testing.T, mux http.Handler, token, id string) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if id != "" {
		mw.WriteField("id", id)
	}
	fw, err := mw.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	fw.Write([]byte("not-a-real-png"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return response
}

func TestUploadImageFilename(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()
	token := adminToken(t, app)

	response := uploadImage(t, mux, token, "17")
	if response["filePath"] != "/uploads/product-17.png" {
		t.Errorf("filePath = %q, want /uploads/product-17.png", response["filePath"])
	}

	// path fragments in the id form value must not reach the filename
	response = uploadImage(t, mux, token, "../../escape")
	path := response["filePath"]
	if !strings.HasPrefix(path, "/uploads/product-") || strings.Contains(path, "..") {
		t.Errorf("filePath = %q, traversal id leaked into the stored name", path)
	}
}

func TestCreateCheckoutSessionWithoutEmail(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	body := `{
		"items": [{"id": 1, "name": "Pizza", "quantity": 1, "basePrice": 10, "totalPrice": 10, "extras": []}],
		"orderId": 123,
		"deliveryType": "pickup"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["id"] != "cs_test" {
		t.Errorf("session id = %q", response["id"])
	}
}
