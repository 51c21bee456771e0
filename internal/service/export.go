package service

import (
	"errors"
	"fmt"

	"github.com/builtrix-tech/metergrid/internal/repository"
)

// maxExportRows caps the 15-minute export at query level; the raw series is
// the only shape that can run away on a wide filter.
const maxExportRows = 10000

// ErrUnknownExportType is returned for a type discriminator outside the
// known set, before any store access happens.
var ErrUnknownExportType = errors.New("unknown export type")

// Export type discriminators.
const (
	ExportMetadata   = "metadata"
	ExportMonthly    = "monthly"
	ExportDaily      = "daily"
	ExportFifteenMin = "fifteenmin"
)

type ExportRequest struct {
	Type   string
	Filter repository.Filter
}

// ExportResult carries the selected rows plus their count. Rendering into a
// downloadable format is the consumer's job.
type ExportResult struct {
	Rows  any `json:"rows"`
	Count int `json:"count"`
}

type ExportService struct {
	store Store
}

// Export runs the query shape selected by req.Type under the same filter
// contract as the individual query operations.
func (s *ExportService) Export(req ExportRequest) (*ExportResult, error) {
	switch req.Type {
	case ExportMetadata:
		rows, err := s.store.ListFacilities()
		if err != nil {
			return nil, err
		}
		return &ExportResult{Rows: rows, Count: len(rows)}, nil
	case ExportMonthly:
		rows, err := s.store.MonthlyConsumption(req.Filter)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Rows: rows, Count: len(rows)}, nil
	case ExportDaily:
		rows, err := s.store.DailyConsumption(req.Filter)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Rows: rows, Count: len(rows)}, nil
	case ExportFifteenMin:
		rows, err := s.store.FifteenMinReadings(req.Filter, maxExportRows)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Rows: rows, Count: len(rows)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportType, req.Type)
	}
}
