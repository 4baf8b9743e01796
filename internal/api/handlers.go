/*
handlers.go - HTTP handlers for the projection dashboard

ENDPOINTS:
  GET  /api/defaults    Dashboard defaults (fractions and widget percentages)
  GET  /api/projection  Trajectory + sweep from widget-style query parameters
  POST /api/projection  Trajectory + sweep from a JSON ScenarioParameters body
  GET  /api/report      HTML dashboard for the query parameters

QUERY PARAMETERS (percentages, as entered in the dashboard widgets):
  expected_return  default 7
  fee_tvc          default 0.8
  tax_saving       default 17
  current_age      default 25
  retirement_age   default 65

ERROR HANDLING:
  - 400: Unparseable numbers or JSON
  - 422: Values outside the accepted bounds, or balances that overflow
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/rpgo/tvc-calculator/internal/config"
	"github.com/rpgo/tvc-calculator/internal/domain"
	"github.com/rpgo/tvc-calculator/internal/output"
)

// Handler holds the API dependencies.
type Handler struct {
	Engine *calculation.CalculationEngine
	Parser *config.InputParser
}

// NewHandler creates a handler around an engine.
func NewHandler(engine *calculation.CalculationEngine) *Handler {
	return &Handler{
		Engine: engine,
		Parser: config.NewInputParser(),
	}
}

// GetDefaults handles GET /api/defaults
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	p := domain.DefaultScenarioParameters()
	writeJSON(w, http.StatusOK, DefaultsResponse{
		Parameters: p,
		Percent: PercentInputs{
			ExpectedReturn: p.ExpectedReturn * 100,
			FeeTVC:         p.FeeTVC * 100,
			TaxSaving:      p.TaxSavingPercent * 100,
			CurrentAge:     p.CurrentAge,
		},
		FeeNonTVC: domain.FeeNonTVC,
	})
}

// GetProjection handles GET /api/projection
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	params, err := parametersFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter", err)
		return
	}
	h.respondProjection(w, r, params)
}

// PostProjection handles POST /api/projection
func (h *Handler) PostProjection(w http.ResponseWriter, r *http.Request) {
	params := domain.DefaultScenarioParameters()
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	h.respondProjection(w, r, params)
}

// GetReport handles GET /api/report
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	params, err := parametersFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter", err)
		return
	}
	if err := h.Parser.ValidateParameters(params); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "parameters out of bounds", err)
		return
	}
	result, ok := h.runScenario(w, r, params)
	if !ok {
		return
	}
	cmp := &domain.ScenarioComparison{GeneratedAt: time.Now(), Scenarios: []domain.ScenarioResult{*result}}
	page, err := output.HTMLFormatter{}.Format(cmp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "report rendering failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// runScenario writes the error response itself and reports false on failure
func (h *Handler) runScenario(w http.ResponseWriter, r *http.Request, params domain.ScenarioParameters) (*domain.ScenarioResult, bool) {
	result, err := h.Engine.RunScenario(r.Context(), calculation.DefaultScenarioName, params)
	switch {
	case errors.Is(err, calculation.ErrNonFiniteProjection):
		writeError(w, http.StatusUnprocessableEntity, "parameters overflow the projection", err)
		return nil, false
	case err != nil:
		writeError(w, http.StatusInternalServerError, "projection failed", err)
		return nil, false
	}
	return result, true
}

func (h *Handler) respondProjection(w http.ResponseWriter, r *http.Request, params domain.ScenarioParameters) {
	if err := h.Parser.ValidateParameters(params); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "parameters out of bounds", err)
		return
	}
	result, ok := h.runScenario(w, r, params)
	if !ok {
		return
	}
	insight := output.AnalyzeScenario(*result)
	writeJSON(w, http.StatusOK, ProjectionResponse{
		Parameters:  result.Parameters,
		Trajectory:  result.Trajectory,
		Sweep:       result.Sweep,
		TerminalGap: insight.TerminalGap,
		Winner:      insight.Winner,
	})
}

// parametersFromQuery reads widget percentages; absent keys keep the dashboard defaults.
func parametersFromQuery(q url.Values) (domain.ScenarioParameters, error) {
	p := domain.DefaultScenarioParameters()

	if err := percentParam(q, "expected_return", &p.ExpectedReturn); err != nil {
		return domain.ScenarioParameters{}, err
	}
	if err := percentParam(q, "fee_tvc", &p.FeeTVC); err != nil {
		return domain.ScenarioParameters{}, err
	}
	if err := percentParam(q, "tax_saving", &p.TaxSavingPercent); err != nil {
		return domain.ScenarioParameters{}, err
	}
	if err := intParam(q, "current_age", &p.CurrentAge); err != nil {
		return domain.ScenarioParameters{}, err
	}
	if err := intParam(q, "retirement_age", &p.RetirementAge); err != nil {
		return domain.ScenarioParameters{}, err
	}
	return p, nil
}

// percentParam stores q[key]/100 into dst when the key is present
func percentParam(q url.Values, key string, dst *float64) error {
	s := q.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v / 100
	return nil
}

func intParam(q url.Values, key string, dst *int) error {
	s := q.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"response encoding failed"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			resp.Details = fmt.Sprintf("%q is not a number", numErr.Num)
		}
	}
	writeJSON(w, status, resp)
}
