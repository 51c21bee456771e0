package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/builtrix-tech/metergrid/internal/domain"
)

// timestampLayout is the only accepted external timestamp form,
// DD-MM-YYYY HH:mm. Parsing is strict: anything else is rejected.
const timestampLayout = "02-01-2006 15:04"

// batchSize is the number of reading/sample rows written per statement.
const batchSize = 1000

// Input file names resolved under the configured data directory.
const (
	MetadataFile  = "metadata.csv"
	ReadingsFile  = "smart_meter.csv"
	SourceMixFile = "energy_source_breakdown.csv"
)

// Store is the write surface the importer needs; satisfied by
// repository.Repos and by test doubles.
type Store interface {
	InsertFacility(*domain.Facility) error
	InsertReadings([]domain.Reading) error
	InsertSourceMixSamples([]domain.SourceMixSample) error
}

type Importer struct {
	store Store
	log   zerolog.Logger
}

func New(store Store, log zerolog.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// Run imports the three input files in order. A malformed row is skipped
// with a warning; a store error aborts the run. Files already imported when
// a later one fails stay imported.
func (im *Importer) Run(dataDir string) error {
	if err := im.ImportFacilities(filepath.Join(dataDir, MetadataFile)); err != nil {
		return fmt.Errorf("import metadata: %w", err)
	}
	if err := im.ImportReadings(filepath.Join(dataDir, ReadingsFile)); err != nil {
		return fmt.Errorf("import smart meter readings: %w", err)
	}
	if err := im.ImportSourceMix(filepath.Join(dataDir, SourceMixFile)); err != nil {
		return fmt.Errorf("import energy source breakdown: %w", err)
	}
	return nil
}

// ImportFacilities loads facility metadata. Rows without a cpe are skipped;
// the store leaves already-known cpe codes untouched, so reimporting the
// same file changes nothing.
func (im *Importer) ImportFacilities(path string) error {
	raw, err := readRows(path)
	if err != nil {
		return err
	}

	var kept int
	for _, row := range raw {
		cpe := strings.TrimSpace(row["cpe"])
		if cpe == "" {
			im.log.Warn().Interface("row", row).Msg("skipping metadata row: missing cpe")
			continue
		}
		f := &domain.Facility{
			CPE:         cpe,
			Lat:         parseFloatOrNil(row["lat"]),
			Lon:         parseFloatOrNil(row["lon"]),
			TotalArea:   parseFloatOrNil(row["totalarea"]),
			Name:        row["name"],
			FullAddress: row["fulladdress"],
		}
		if err := im.store.InsertFacility(f); err != nil {
			return fmt.Errorf("insert facility %s: %w", cpe, err)
		}
		kept++
	}

	im.log.Info().
		Int("imported", kept).
		Int("skipped", len(raw)-kept).
		Msg("metadata import complete")
	return nil
}

// ImportReadings loads meter readings. The whole file is parsed into memory
// first, then written in fixed-size batches. Readings have no conflict key:
// reimporting a file duplicates its rows.
func (im *Importer) ImportReadings(path string) error {
	raw, err := readRows(path)
	if err != nil {
		return err
	}

	var rows []domain.Reading
	for _, row := range raw {
		cpe := strings.TrimSpace(row["cpe"])
		if cpe == "" || strings.TrimSpace(row["timestamp"]) == "" {
			im.log.Warn().Interface("row", row).Msg("skipping reading row: missing cpe or timestamp")
			continue
		}
		ts, err := ParseTimestamp(row["timestamp"])
		if err != nil {
			im.log.Warn().Str("timestamp", row["timestamp"]).Msg("skipping reading row: invalid timestamp")
			continue
		}
		rows = append(rows, domain.Reading{
			CPE:          cpe,
			Timestamp:    ts,
			ActiveEnergy: parseFloatOrZero(row["active_energy"]),
		})
	}

	batches := (len(rows) + batchSize - 1) / batchSize
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := im.store.InsertReadings(rows[i:end]); err != nil {
			return fmt.Errorf("insert readings batch %d: %w", i/batchSize+1, err)
		}
		im.log.Info().
			Int("batch", i/batchSize+1).
			Int("batches", batches).
			Msg("reading batch written")
	}

	im.log.Info().
		Int("imported", len(rows)).
		Int("skipped", len(raw)-len(rows)).
		Msg("smart meter import complete")
	return nil
}

// ImportSourceMix loads grid source-mix samples. Same batching and
// duplication semantics as readings.
func (im *Importer) ImportSourceMix(path string) error {
	raw, err := readRows(path)
	if err != nil {
		return err
	}

	var rows []domain.SourceMixSample
	for _, row := range raw {
		if strings.TrimSpace(row["timestamp"]) == "" {
			im.log.Warn().Interface("row", row).Msg("skipping source mix row: missing timestamp")
			continue
		}
		ts, err := ParseTimestamp(row["timestamp"])
		if err != nil {
			im.log.Warn().Str("timestamp", row["timestamp"]).Msg("skipping source mix row: invalid timestamp")
			continue
		}
		rows = append(rows, domain.SourceMixSample{
			Timestamp:               ts,
			Renewable:               parseFloatOrZero(row["renewable"]),
			RenewableBiomass:        parseFloatOrZero(row["renewable_biomass"]),
			RenewableHydro:          parseFloatOrZero(row["renewable_hydro"]),
			RenewableSolar:          parseFloatOrZero(row["renewable_solar"]),
			RenewableWind:           parseFloatOrZero(row["renewable_wind"]),
			RenewableGeothermal:     parseFloatOrZero(row["renewable_geothermal"]),
			RenewableOtherRenewable: parseFloatOrZero(row["renewable_otherrenewable"]),
			NonRenewable:            parseFloatOrZero(row["nonrenewable"]),
			NonRenewableCoal:        parseFloatOrZero(row["nonrenewable_coal"]),
			NonRenewableGas:         parseFloatOrZero(row["nonrenewable_gas"]),
			NonRenewableNuclear:     parseFloatOrZero(row["nonrenewable_nuclear"]),
			NonRenewableOil:         parseFloatOrZero(row["nonrenewable_oil"]),
			HydroPumpedStorage:      parseFloatOrZero(row["hydropumpedstorage"]),
			Unknown:                 parseFloatOrZero(row["unknown"]),
		})
	}

	batches := (len(rows) + batchSize - 1) / batchSize
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := im.store.InsertSourceMixSamples(rows[i:end]); err != nil {
			return fmt.Errorf("insert source mix batch %d: %w", i/batchSize+1, err)
		}
		im.log.Info().
			Int("batch", i/batchSize+1).
			Int("batches", batches).
			Msg("source mix batch written")
	}

	im.log.Info().
		Int("imported", len(rows)).
		Int("skipped", len(raw)-len(rows)).
		Msg("energy source breakdown import complete")
	return nil
}

// ParseTimestamp parses the external DD-MM-YYYY HH:mm form into a
// minute-precision UTC time. Seconds are zero by construction. The length
// check keeps parsing exact-width: time.Parse alone would also accept
// single-digit day, month and hour components.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(timestampLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q does not match DD-MM-YYYY HH:mm", s)
	}
	return time.ParseInLocation(timestampLayout, s, time.UTC)
}

func parseFloatOrNil(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
