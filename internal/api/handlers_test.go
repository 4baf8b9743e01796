package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(calculation.NewCalculationEngine()), []string{"http://localhost:5173"}))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, into any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if into != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	resp := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestGetDefaults(t *testing.T) {
	srv := newTestServer(t)
	var body DefaultsResponse
	resp := getJSON(t, srv.URL+"/api/defaults", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.07, body.Parameters.ExpectedReturn)
	assert.InDelta(t, 7.0, body.Percent.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.8, body.Percent.FeeTVC, 1e-9)
	assert.InDelta(t, 17.0, body.Percent.TaxSaving, 1e-9)
	assert.Equal(t, 25, body.Percent.CurrentAge)
	assert.Equal(t, 0.0, body.FeeNonTVC)
}

func TestGetProjection_Defaults(t *testing.T) {
	srv := newTestServer(t)
	var body ProjectionResponse
	resp := getJSON(t, srv.URL+"/api/projection", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Trajectory.Ages, 41)
	assert.Equal(t, 60000.0, body.Trajectory.TVCValues[0])
	assert.Len(t, body.Sweep.StartAges, 40)
	require.NotNil(t, body.Sweep.BreakevenAge)
	assert.Equal(t, 41, *body.Sweep.BreakevenAge)
	assert.Equal(t, "Non-TVC", body.Winner)
	assert.Less(t, body.TerminalGap, 0.0)
}

func TestGetProjection_QueryPercentages(t *testing.T) {
	srv := newTestServer(t)
	var body ProjectionResponse
	resp := getJSON(t, srv.URL+"/api/projection?expected_return=5&fee_tvc=0.5&tax_saving=0&current_age=60", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 0.05, body.Parameters.ExpectedReturn, 1e-12)
	assert.InDelta(t, 0.005, body.Parameters.FeeTVC, 1e-12)
	assert.Equal(t, 60, body.Parameters.CurrentAge)
	assert.Len(t, body.Trajectory.Ages, 6)
	assert.Nil(t, body.Sweep.BreakevenAge)
}

func TestGetProjection_NullBreakevenInJSON(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/projection?tax_saving=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"breakeven_age":null`)
}

func TestGetProjection_DegenerateAge(t *testing.T) {
	srv := newTestServer(t)
	var body ProjectionResponse
	resp := getJSON(t, srv.URL+"/api/projection?current_age=70", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Trajectory.Ages, 1)
	assert.Empty(t, body.Sweep.StartAges)
}

func TestGetProjection_BadInput(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		desc   string
		query  string
		status int
		detail string
	}{
		{"non numeric return", "expected_return=abc", http.StatusBadRequest, `"abc" is not a number`},
		{"non integer age", "current_age=2.5", http.StatusBadRequest, "not a number"},
		{"return above bound", "expected_return=16", http.StatusUnprocessableEntity, "expected return"},
		{"negative fee", "fee_tvc=-1", http.StatusUnprocessableEntity, "TVC fee"},
		{"tax saving above 100%", "tax_saving=150", http.StatusUnprocessableEntity, "tax saving"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var body ErrorResponse
			resp := getJSON(t, srv.URL+"/api/projection?"+tc.query, &body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.NotEmpty(t, body.Error)
			assert.Contains(t, body.Details, tc.detail)
		})
	}
}

func TestProjection_OverflowingFee(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/projection?fee_tvc=1e10", "/api/report?fee_tvc=1e10"} {
		t.Run(path, func(t *testing.T) {
			var body ErrorResponse
			resp := getJSON(t, srv.URL+path, &body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, "parameters overflow the projection", body.Error)
			assert.Contains(t, body.Details, "non-finite")
		})
	}

	resp, err := http.Post(srv.URL+"/api/projection", "application/json", strings.NewReader(`{"fee_tvc": 1e8}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// a single growth year stays finite
	var ok ProjectionResponse
	resp = getJSON(t, srv.URL+"/api/projection?fee_tvc=1e10&current_age=64", &ok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, ok.Trajectory.Ages, 2)
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"gap": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "response encoding failed")
}

func TestPostProjection(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"expected_return": 0.07, "fee_tvc": 0, "tax_saving_percent": 0, "current_age": 30}`
	resp, err := http.Post(srv.URL+"/api/projection", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProjectionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Fields absent from the body keep their defaults
	assert.Equal(t, 65, body.Parameters.RetirementAge)
	assert.Equal(t, 60000.0, body.Parameters.BaseInvestment)

	// Equal terms: identical trajectories, breakeven at the first age
	assert.Equal(t, body.Trajectory.TVCValues, body.Trajectory.NonTVCValues)
	require.NotNil(t, body.Sweep.BreakevenAge)
	assert.Equal(t, 30, *body.Sweep.BreakevenAge)
	assert.Equal(t, "Tie", body.Winner)
}

func TestPostProjection_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/projection", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetReport(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/report?current_age=30")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "TVC vs Non-TVC Dashboard")
	assert.Contains(t, buf.String(), "Breakeven at age 41")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/projection", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
