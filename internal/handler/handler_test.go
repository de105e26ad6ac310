package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"covid-hospital-backend/internal/config"
	"covid-hospital-backend/internal/handler"
	"covid-hospital-backend/internal/importer"
	"covid-hospital-backend/internal/metrics"
	"covid-hospital-backend/internal/middleware"
	"covid-hospital-backend/internal/repository/memory"
	"covid-hospital-backend/internal/router"
	"covid-hospital-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type testServer struct {
	engine    *gin.Engine
	hospitals *memory.HospitalRepository
	counts    *memory.GlobalCountRepository
	rows      []importer.Row
	sourceErr error
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestServer(rows []importer.Row, pinger handler.Pinger) *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		hospitals: memory.NewHospitalRepository(),
		counts:    memory.NewGlobalCountRepository(),
		rows:      rows,
	}
	source := func() ([]importer.Row, error) {
		if ts.sourceErr != nil {
			return nil, ts.sourceErr
		}
		return ts.rows, nil
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	log := zap.NewNop()
	cfg := &config.Config{}

	hospitalService := service.NewHospitalService(ts.hospitals, source, m, log)
	countService := service.NewGlobalCountService(ts.counts, 10)

	ts.engine = router.New(cfg, router.Handlers{
		Hospital:    handler.NewHospitalHandler(hospitalService, middleware.NewValidator(), log),
		GlobalCount: handler.NewGlobalCountHandler(countService),
		Health:      handler.NewHealthHandler(pinger, "test"),
	}, m, reg, log)
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

var errStore = errors.New("storage offline")
