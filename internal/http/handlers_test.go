package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builtrix-tech/metergrid/internal/domain"
	"github.com/builtrix-tech/metergrid/internal/repository"
	"github.com/builtrix-tech/metergrid/internal/service"
)

type stubStore struct {
	lastFilter repository.Filter
	calls      int
}

func (s *stubStore) ListFacilities() ([]domain.FacilityWithTotal, error) {
	s.calls++
	return []domain.FacilityWithTotal{}, nil
}

func (s *stubStore) MonthlyConsumption(f repository.Filter) ([]domain.MonthlyConsumption, error) {
	s.calls++
	s.lastFilter = f
	return []domain.MonthlyConsumption{}, nil
}

func (s *stubStore) DailyConsumption(f repository.Filter) ([]domain.DailyConsumption, error) {
	s.calls++
	s.lastFilter = f
	return nil, nil
}

func (s *stubStore) FifteenMinReadings(f repository.Filter, limit int) ([]domain.FifteenMinReading, error) {
	s.calls++
	s.lastFilter = f
	return nil, nil
}

func (s *stubStore) SourceMixSeries(f repository.Filter) ([]domain.SourceMixSample, error) {
	s.calls++
	s.lastFilter = f
	return nil, nil
}

func newTestApp(store service.Store) *fiber.App {
	app := fiber.New()
	Register(app, service.New(store))
	return app
}

func TestMonthlyFilterParsing(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/energy/monthly?year=2021&building=CPE001", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, repository.Filter{Year: 2021, Building: "CPE001"}, store.lastFilter)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.True(t, payload.Success)
}

func TestMissingFiltersStayZero(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/energy/15min", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, repository.Filter{}, store.lastFilter)
}

func TestExportUnknownTypeIsBadRequest(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/export?type=bogus", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, store.calls)
}

func TestExportReturnsRowsAndCount(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/export?type=monthly&year=2021", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Rows  json.RawMessage `json:"rows"`
		Count int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 0, payload.Count)
	assert.Equal(t, repository.Filter{Year: 2021}, store.lastFilter)
}
