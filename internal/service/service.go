package service

import (
	"github.com/builtrix-tech/metergrid/internal/domain"
	"github.com/builtrix-tech/metergrid/internal/repository"
)

// Store is the read surface the query layer needs; satisfied by
// repository.Repos and by test doubles.
type Store interface {
	ListFacilities() ([]domain.FacilityWithTotal, error)
	MonthlyConsumption(repository.Filter) ([]domain.MonthlyConsumption, error)
	DailyConsumption(repository.Filter) ([]domain.DailyConsumption, error)
	FifteenMinReadings(f repository.Filter, limit int) ([]domain.FifteenMinReading, error)
	SourceMixSeries(repository.Filter) ([]domain.SourceMixSample, error)
}

type Services struct {
	Store  Store
	Export *ExportService
}

func New(store Store) *Services {
	return &Services{
		Store:  store,
		Export: &ExportService{store: store},
	}
}
