package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sigevents/staffops-backend-go/internal/domain/auth"
	"github.com/sigevents/staffops-backend-go/internal/domain/dashboard"
	"github.com/sigevents/staffops-backend-go/internal/domain/event"
	"github.com/sigevents/staffops-backend-go/internal/domain/invoice"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/domain/steps"
	"github.com/sigevents/staffops-backend-go/internal/domain/user"
	"github.com/sigevents/staffops-backend-go/internal/pkg/jwt"
	"github.com/sigevents/staffops-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

type fakeStatsService struct {
	result *stats.WindowStatistics
	err    error
	gotReq stats.WindowRequest
}

func (f *fakeStatsService) QueryWindow(_ context.Context, req stats.WindowRequest) (*stats.WindowStatistics, error) {
	f.gotReq = req
	return f.result, f.err
}

func (f *fakeStatsService) ApplyRate(_ context.Context, _ stats.ApplyRateRequest) (*stats.WindowStatistics, error) {
	return f.result, f.err
}

func (f *fakeStatsService) CurrentStatistics(_ context.Context, _ string) (*stats.WindowStatistics, error) {
	return f.result, f.err
}

type fakeAuthService struct{}

func (f *fakeAuthService) Login(context.Context, auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidCredentials
}
func (f *fakeAuthService) LoginWithGoogle(context.Context, string, string) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, nil
}
func (f *fakeAuthService) RefreshToken(context.Context, auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	return auth.AccessTokenResponse{}, nil
}
func (f *fakeAuthService) Logout(context.Context, string) error { return nil }

type fakeEventService struct{}

func (f *fakeEventService) ListStaffEvents(context.Context, event.StaffEventsRequest) ([]event.StaffEvent, error) {
	return nil, nil
}

type fakeInvoiceService struct{}

func (f *fakeInvoiceService) ListEvents(context.Context, invoice.ListEventsRequest) ([]invoice.EventSummary, error) {
	return nil, nil
}
func (f *fakeInvoiceService) BuildInvoice(context.Context, invoice.BuildInvoiceRequest) (invoice.Invoice, error) {
	return invoice.Invoice{}, invoice.ErrEventNotFound
}

type fakeStepsService struct{}

func (f *fakeStepsService) PeriodSummary(context.Context, steps.SummaryRequest) (steps.StepsSummary, error) {
	return steps.StepsSummary{}, nil
}
func (f *fakeStepsService) EfficiencyBoard(context.Context, steps.SummaryRequest) ([]steps.WaiterStepStats, error) {
	return nil, nil
}

type fakeDashboardService struct{}

func (f *fakeDashboardService) GetDashboard(context.Context, dashboard.DashboardRequest) (*dashboard.DashboardResponse, error) {
	return &dashboard.DashboardResponse{}, nil
}

type fakeRecordWriter struct {
	gotDataset string
	gotDoc     stats.Record
}

func (f *fakeRecordWriter) CreateRecord(_ context.Context, dataset string, doc stats.Record) (string, error) {
	f.gotDataset = dataset
	f.gotDoc = doc
	return "rec-1", nil
}

type testEnv struct {
	router     http.Handler
	jwtService jwt.Service
	stats      *fakeStatsService
	writer     *fakeRecordWriter
}

func newTestEnv() *testEnv {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	googleService := oauth.NewGoogleService("", "", "", nil)

	statsService := &fakeStatsService{result: &stats.WindowStatistics{Dataset: stats.DatasetSignatureWaiters}}
	writer := &fakeRecordWriter{}
	datasets := stats.DefaultDatasets([]string{"Ann"})

	router := NewRouter(
		jwtService,
		NewAuthHandler(jwtService, &fakeAuthService{}, googleService, "http://localhost:3000"),
		NewStatsHandler(statsService),
		NewEventHandler(&fakeEventService{}),
		NewInvoiceHandler(&fakeInvoiceService{}),
		NewStepsHandler(&fakeStepsService{}),
		NewDashboardHandler(&fakeDashboardService{}),
		NewRecordHandler(writer, datasets),
	)

	return &testEnv{router: router, jwtService: jwtService, stats: statsService, writer: writer}
}

func (e *testEnv) accessToken(t *testing.T, role user.Role) string {
	token, _, err := e.jwtService.GenerateAccessToken("user-1", "user@example.com", role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, target, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestStatsRoutes_RequireAuthentication(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/v1/stats/signature_waiters?start_date=2024/06/01&end_date=2024/06/30", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQueryWindow_Success(t *testing.T) {
	env := newTestEnv()
	token := env.accessToken(t, user.RoleStaff)

	rec := env.do(t, http.MethodGet, "/api/v1/stats/signature_waiters?start_date=2024/06/01&end_date=2024/06/30", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "signature_waiters", env.stats.gotReq.Dataset)
	assert.Equal(t, "2024/06/01", env.stats.gotReq.StartDate)
}

func TestQueryWindow_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid range", stats.ErrInvalidRange, http.StatusBadRequest},
		{"unknown dataset", stats.ErrDatasetNotFound, http.StatusNotFound},
		{"source down", stats.ErrSourceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.stats.err = tc.err
			token := env.accessToken(t, user.RoleStaff)

			rec := env.do(t, http.MethodGet, "/api/v1/stats/signature_waiters", token, nil)
			assert.Equal(t, tc.code, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.Equal(t, false, envelope["success"])
		})
	}
}

func TestApplyRate_AdminOnly(t *testing.T) {
	env := newTestEnv()
	body := []byte(`{"identity":"ann","rate":"120"}`)

	rec := env.do(t, http.MethodPut, "/api/v1/stats/signature_waiters/rate", env.accessToken(t, user.RoleStaff), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/stats/signature_waiters/rate", env.accessToken(t, user.RoleAdmin), body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateRecord_AdminOnly(t *testing.T) {
	env := newTestEnv()
	body := []byte(`{"date":"2024/06/01","waiters":["Ann"]}`)

	rec := env.do(t, http.MethodPost, "/api/v1/records/signature_waiters", env.accessToken(t, user.RoleStaff), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/records/signature_waiters", env.accessToken(t, user.RoleAdmin), body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "signature_waiters", env.writer.gotDataset)
	assert.Equal(t, "2024/06/01", env.writer.gotDoc["date"])
}

func TestCreateRecord_UnknownDataset(t *testing.T) {
	env := newTestEnv()
	body := []byte(`{"date":"2024/06/01"}`)

	rec := env.do(t, http.MethodPost, "/api/v1/records/nope", env.accessToken(t, user.RoleAdmin), body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshTokenFlow(t *testing.T) {
	env := newTestEnv()

	refresh, _, err := env.jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	body, err := json.Marshal(map[string]string{"refresh_token": refresh})
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/refresh", "", body)
	assert.Equal(t, http.StatusOK, rec.Code)
}
