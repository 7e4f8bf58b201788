package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"flowworks-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu     sync.Mutex
	team   []Inquiry
	acks   []Inquiry
	teamFn func() error
}

func (n *fakeNotifier) SendContactNotification(ctx context.Context, inq Inquiry) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.team = append(n.team, inq)
	if n.teamFn != nil {
		if err := n.teamFn(); err != nil {
			return "", err
		}
	}
	return "msg-team", nil
}

func (n *fakeNotifier) SendContactAcknowledgement(ctx context.Context, inq Inquiry) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.acks = append(n.acks, inq)
	return "msg-ack", nil
}

type failingRepo struct {
	*MemoryRepository
}

func (failingRepo) Create(ctx context.Context, inq Inquiry) error {
	return errors.New("connection refused")
}

type fixture struct {
	repo     *MemoryRepository
	notifier *fakeNotifier
	service  *Service
	router   http.Handler
}

func newFixture(t *testing.T, repo Repository) *fixture {
	t.Helper()
	mem := NewMemoryRepository()
	if repo == nil {
		repo = mem
	}
	notifier := &fakeNotifier{}
	svc := NewService(repo, time.UTC, notifier, "US")
	h := NewHandler(svc, validation.New("US"), slog.New(slog.NewTextHandler(io.Discard, nil)), 5000)
	h.dispatch = func(fn func()) { fn() }

	r := chi.NewRouter()
	r.Post("/contact", h.Submit)
	r.Get("/phone/format", h.FormatPhone)
	r.Route("/admin/contacts", h.AdminRoutes)
	return &fixture{repo: mem, notifier: notifier, service: svc, router: r}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "contact-test")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeSubmit(t *testing.T, rec *httptest.ResponseRecorder) SubmitResponse {
	t.Helper()
	var out SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/contact", `{"name":"   ","email":"","message":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	out := decodeSubmit(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, map[string]string{
		"name":    "required",
		"email":   "required",
		"message": "required",
	}, out.Errors)

	count, err := f.repo.Count(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, f.notifier.team)
	assert.Empty(t, f.notifier.acks)
}

func TestSubmitRejectsBadEmailAndPhone(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/contact", `{"name":"Dana","email":"not-an-email","phone":"12","message":"Hi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	out := decodeSubmit(t, rec)
	assert.Equal(t, "email", out.Errors["email"])
	assert.Equal(t, "phone", out.Errors["phone"])
}

func TestSubmitRejectsUnknownFields(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodPost, "/contact", `{"name":"Dana","email":"dana@example.com","message":"Hi","budget":"lots"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeSubmit(t, rec).Success)
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/contact", `{
		"name": " Dana Whitfield ",
		"email": "Dana@Example.com",
		"company": "Whitfield Transport",
		"phone": "6502530000",
		"message": "We need help with dispatch.",
		"interest": "industry-solutions"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeSubmit(t, rec)
	assert.True(t, out.Success)
	assert.Equal(t, successMessage, out.Message)
	assert.Equal(t, 5000, out.ClearAfterMs)
	assert.Empty(t, out.Errors)

	items, total, err := f.service.List(context.Background(), ListFilter{}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	inq := items[0]
	assert.Equal(t, "Dana Whitfield", inq.Name)
	assert.Equal(t, "dana@example.com", inq.Email)
	assert.Equal(t, "+1 650-253-0000", inq.Phone)
	assert.Equal(t, StatusNew, inq.Status)
	assert.Equal(t, "contact-test", inq.UserAgent)
	assert.Len(t, inq.ID, 24)

	require.Len(t, f.notifier.team, 1)
	require.Len(t, f.notifier.acks, 1)
	assert.Equal(t, inq.ID, f.notifier.team[0].ID)
}

func TestSubmitNotificationFailureStillSucceeds(t *testing.T) {
	f := newFixture(t, nil)
	f.notifier.teamFn = func() error { return errors.New("brevo down") }

	rec := f.do(t, http.MethodPost, "/contact", `{"name":"Dana","email":"dana@example.com","message":"Hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeSubmit(t, rec).Success)
	assert.Len(t, f.notifier.acks, 1)
}

func TestSubmitStorageFailure(t *testing.T) {
	f := newFixture(t, failingRepo{NewMemoryRepository()})

	rec := f.do(t, http.MethodPost, "/contact", `{"name":"Dana","email":"dana@example.com","message":"Hi"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	out := decodeSubmit(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, failureMessage, out.Message)
	assert.Empty(t, f.notifier.team)
}

func TestFormatPhoneEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/phone/format?value=6502530000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"formatted":"+1 650-253-0000"}`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/phone/format?value=call+me", "")
	assert.JSONEq(t, `{"formatted":"call me"}`, rec.Body.String())
}

func TestAdminListGetAndUpdate(t *testing.T) {
	f := newFixture(t, nil)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, f.repo.Create(context.Background(), Inquiry{
			ID:        strings.Repeat(string(rune('a'+i)), 24),
			Name:      "Lead",
			Email:     email,
			Message:   "hello",
			Status:    StatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	rec := f.do(t, http.MethodGet, "/admin/contacts?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []Inquiry `json:"items"`
		Total int64     `json:"total"`
		Limit int64     `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.EqualValues(t, 3, list.Total)
	assert.EqualValues(t, 2, list.Limit)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "c@example.com", list.Items[0].Email)

	id := strings.Repeat("b", 24)
	rec = f.do(t, http.MethodPatch, "/admin/contacts/"+id, `{"status":"Qualified"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Inquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusQualified, updated.Status)

	rec = f.do(t, http.MethodGet, "/admin/contacts?status=qualified", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, id, list.Items[0].ID)

	rec = f.do(t, http.MethodGet, "/admin/contacts/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin/contacts/"+strings.Repeat("z", 24), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPatch, "/admin/contacts/"+id, `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin/contacts?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin/contacts?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
