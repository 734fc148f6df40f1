package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"catering/database/repository"
	"catering/handlers"
	"catering/models"
	"catering/routes"
	"catering/services/account"
	"catering/services/auth"
	"catering/services/calendar"
	"catering/services/dashboard"
	"catering/services/offer"
	"catering/services/online"
	"catering/services/report"
	"catering/services/reservation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testServer struct {
	router *gin.Engine
	repos  *repository.Set
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repository.NewMemorySet()
	authSvc := &auth.DefaultAuthService{
		Users:  repos.Users,
		Tokens: auth.NewMemoryTokenStore(),
		Secret: []byte("handler-test-secret"),
	}
	ctx := context.Background()
	require.NoError(t, authSvc.SeedAdmin(ctx, "admin@example.com", "password123", ""))

	resSvc := reservation.NewReservationService(repos.Reservations, time.UTC)
	onlineHandler := handlers.NewOnlineHandler(&online.DefaultOnlineService{
		Official: repos.Reservations,
		Staged:   repos.Staged,
		Location: time.UTC,
	})
	onlineHandler.Now = func() time.Time { return time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC) }

	hb := &handlers.HandlerBundle{
		Auth:               authSvc,
		AuthHandler:        handlers.NewAuthHandler(authSvc),
		ReservationHandler: handlers.NewReservationHandler(resSvc, &report.DefaultReportService{Reservations: resSvc}),
		OnlineHandler:      onlineHandler,
		CalendarHandler: handlers.NewCalendarHandler(&calendar.DefaultCalendarService{
			Repo:     repos.Reservations,
			Location: time.UTC,
			Now:      func() time.Time { return time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC) },
		}, time.UTC),
		DashboardHandler: handlers.NewDashboardHandler(&dashboard.DefaultDashboardService{Repo: repos.Reservations, Location: time.UTC}),
		CatalogHandler:   handlers.NewCatalogHandler(offer.NewCatalogService(repos.Packages, repos.MenuItems, nil, 0)),
		AccountHandler:   handlers.NewAccountHandler(&account.DefaultAccountService{Auth: authSvc}),
	}

	r := gin.New()
	routes.RegisterRoutes(r, hb)
	ts := &testServer{router: r, repos: repos}

	w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session models.Session
	decode(t, w, &session)
	ts.token = session.Token
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""

	w := ts.do(t, http.MethodGet, "/api/reservations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decode(t, w, nil)
	assert.False(t, env.Success)

	w = ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.token = ""
	w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationLifecycle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/reservations", map[string]interface{}{
		"name":             "Santos",
		"mobile_number":    "09170000000",
		"location":         "Hall A",
		"pax":              50,
		"reservation_date": "2024-06-15",
		"total_price":      25000.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Reservation
	decode(t, w, &created)
	assert.Equal(t, models.ReservationTypeWalkIn, created.Type)

	w = ts.do(t, http.MethodPatch, "/api/reservations/"+itoa(created.ID), map[string]interface{}{"pax": 60})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Reservation
	decode(t, w, &updated)
	assert.Equal(t, 60, updated.Pax)
	assert.Equal(t, "Santos", updated.Name)

	w = ts.do(t, http.MethodGet, "/api/reservations?page=1&perPage=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page models.ReservationPage
	decode(t, w, &page)
	assert.Equal(t, int64(1), page.TotalCount)

	w = ts.do(t, http.MethodDelete, "/api/reservations/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/reservations/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/reservations", map[string]interface{}{"name": "", "pax": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/reservations?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/reservations?perPage=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/reservations/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSV(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	for _, d := range []string{"2024-06-01", "2024-06-02"} {
		require.NoError(t, ts.repos.Reservations.Create(ctx, &models.Reservation{
			Name: "Reyes", MobileNumber: "1", Location: "Hall", Pax: 10, ReservationDate: d, Type: models.ReservationTypeWalkIn,
		}))
	}

	w := ts.do(t, http.MethodGet, "/api/reservations/export?start=2024-06-01&format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Reservations_2024-06-01_onwards.csv")

	w = ts.do(t, http.MethodGet, "/api/reservations/export?start=2030-01-01", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/reservations/export?start=2024-06-01&format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromoteAndPurgeOnline(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	keep := models.StagedReservation{Name: "Lim", MobileNumber: "2", Location: "Garden", Pax: 20, ReservationDate: "2024-06-20"}
	old := models.StagedReservation{Name: "Tan", MobileNumber: "3", Location: "Garden", Pax: 20, ReservationDate: "2024-06-01"}
	require.NoError(t, ts.repos.Staged.Create(ctx, &keep))
	require.NoError(t, ts.repos.Staged.Create(ctx, &old))

	w := ts.do(t, http.MethodPost, "/api/online/"+itoa(keep.ID)+"/promote", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var promoted models.Reservation
	decode(t, w, &promoted)
	assert.Equal(t, models.ReservationTypeOnline, promoted.Type)

	w = ts.do(t, http.MethodPost, "/api/online/"+itoa(keep.ID)+"/promote", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/online/purge", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var remaining []models.StagedReservation
	decode(t, w, &remaining)
	assert.Empty(t, remaining)

	w = ts.do(t, http.MethodDelete, "/api/online/"+itoa(old.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalendarAndDashboard(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.repos.Reservations.Create(ctx, &models.Reservation{
		Name: "Cruz", MobileNumber: "1", Location: "Hall", Pax: 10, ReservationDate: "2024-06-12", Type: models.ReservationTypeWalkIn,
	}))

	w := ts.do(t, http.MethodGet, "/api/calendar?year=2024&month=6", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cal models.CalendarMonth
	decode(t, w, &cal)
	require.Len(t, cal.Days, 30)
	assert.True(t, cal.Days[11].Reserved)
	assert.False(t, cal.Days[0].IsOpen)

	w = ts.do(t, http.MethodGet, "/api/calendar?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/calendar/upcoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dates []string
	decode(t, w, &dates)
	assert.Equal(t, []string{"2024-06-12"}, dates)

	w = ts.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash models.DashboardData
	decode(t, w, &dash)
	assert.Len(t, dash.MonthlyStats, 6)
}

func TestPackageImageWithoutStorageKeepsRow(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/packages", map[string]interface{}{
		"title": "Debut",
		"price": 500,
		"image": "iVBORw0KGgoAAAANSUhEUg==",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	var p models.CateringPackage
	env := decode(t, w, &p)
	assert.False(t, env.Success)
	assert.NotZero(t, p.ID)

	w = ts.do(t, http.MethodGet, "/api/packages/"+itoa(p.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/menu-items", map[string]interface{}{"name": "Bibingka", "price": 45})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, http.MethodGet, "/api/menu-items", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	assert.Len(t, items, 1)
}

func TestAccountCredentials(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/account", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var creds models.Credentials
	decode(t, w, &creds)
	assert.Equal(t, account.NotSet, creds.FullName)
	assert.Equal(t, "admin@example.com", creds.Email)

	w = ts.do(t, http.MethodPatch, "/api/account", map[string]string{"field": "display_name", "value": "Maria"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &creds)
	assert.Equal(t, "Maria", creds.FullName)

	w = ts.do(t, http.MethodPatch, "/api/account", map[string]string{"field": "nickname", "value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
