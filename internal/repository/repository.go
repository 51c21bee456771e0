package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/builtrix-tech/metergrid/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// InsertFacility writes one facility row. A cpe already present in the store
// is left untouched, so reimporting a metadata file is a no-op per facility.
func (r *Repos) InsertFacility(f *domain.Facility) error {
	_, err := r.db.Exec(
		`INSERT INTO metadata (cpe, lat, lon, totalarea, name, fulladdress)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (cpe) DO NOTHING`,
		f.CPE, f.Lat, f.Lon, f.TotalArea, f.Name, f.FullAddress,
	)
	return err
}

// InsertReadings writes a batch as one multi-row statement. There is no
// conflict key on readings; callers reimporting a file accumulate duplicates.
func (r *Repos) InsertReadings(rows []domain.Reading) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := r.db.NamedExec(
		`INSERT INTO smart_meter (cpe, timestamp, active_energy)
		 VALUES (:cpe, :timestamp, :active_energy)`,
		rows,
	)
	return err
}

func (r *Repos) InsertSourceMixSamples(rows []domain.SourceMixSample) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := r.db.NamedExec(
		`INSERT INTO energy_source_breakdown (
		   timestamp, renewable, renewable_biomass, renewable_hydro,
		   renewable_solar, renewable_wind, renewable_geothermal,
		   renewable_otherrenewable, nonrenewable, nonrenewable_coal,
		   nonrenewable_gas, nonrenewable_nuclear, nonrenewable_oil,
		   hydropumpedstorage, unknown
		 ) VALUES (
		   :timestamp, :renewable, :renewable_biomass, :renewable_hydro,
		   :renewable_solar, :renewable_wind, :renewable_geothermal,
		   :renewable_otherrenewable, :nonrenewable, :nonrenewable_coal,
		   :nonrenewable_gas, :nonrenewable_nuclear, :nonrenewable_oil,
		   :hydropumpedstorage, :unknown
		 )`,
		rows,
	)
	return err
}

func (r *Repos) ListFacilities() ([]domain.FacilityWithTotal, error) {
	query, args := facilityListingQuery()
	var out []domain.FacilityWithTotal
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *Repos) MonthlyConsumption(f Filter) ([]domain.MonthlyConsumption, error) {
	query, args := monthlyQuery(f)
	var out []domain.MonthlyConsumption
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *Repos) DailyConsumption(f Filter) ([]domain.DailyConsumption, error) {
	query, args := dailyQuery(f)
	var out []domain.DailyConsumption
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *Repos) FifteenMinReadings(f Filter, limit int) ([]domain.FifteenMinReading, error) {
	query, args := fifteenMinQuery(f, limit)
	var out []domain.FifteenMinReading
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *Repos) SourceMixSeries(f Filter) ([]domain.SourceMixSample, error) {
	query, args := sourceMixQuery(f)
	var out []domain.SourceMixSample
	err := r.db.Select(&out, query, args...)
	return out, err
}
