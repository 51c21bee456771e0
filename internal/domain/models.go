package domain

import "time"

// Facility is one metered building, keyed by its CPE code. The numeric
// columns are pointers because source files routinely leave them blank.
type Facility struct {
	CPE         string   `db:"cpe" json:"cpe"`
	Lat         *float64 `db:"lat" json:"lat"`
	Lon         *float64 `db:"lon" json:"lon"`
	TotalArea   *float64 `db:"totalarea" json:"totalarea"`
	Name        string   `db:"name" json:"name"`
	FullAddress string   `db:"fulladdress" json:"fulladdress"`
}

// FacilityWithTotal carries the lifetime consumption sum alongside the
// facility row. TotalConsumption is nil for facilities with no readings.
type FacilityWithTotal struct {
	Facility
	TotalConsumption *float64 `db:"total_consumption" json:"total_consumption"`
}

// Reading is one smart-meter sample at minute precision.
type Reading struct {
	CPE          string    `db:"cpe" json:"cpe"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	ActiveEnergy float64   `db:"active_energy" json:"active_energy"`
}

type MonthlyConsumption struct {
	CPE              string  `db:"cpe" json:"cpe"`
	Name             string  `db:"name" json:"name"`
	Year             int     `db:"year" json:"year"`
	Month            int     `db:"month" json:"month"`
	TotalConsumption float64 `db:"total_consumption" json:"total_consumption"`
}

type DailyConsumption struct {
	CPE              string  `db:"cpe" json:"cpe"`
	Name             string  `db:"name" json:"name"`
	Year             int     `db:"year" json:"year"`
	Month            int     `db:"month" json:"month"`
	Day              int     `db:"day" json:"day"`
	TotalConsumption float64 `db:"total_consumption" json:"total_consumption"`
}

// FifteenMinReading is a raw reading joined with its facility name.
type FifteenMinReading struct {
	CPE          string    `db:"cpe" json:"cpe"`
	Name         string    `db:"name" json:"name"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	ActiveEnergy float64   `db:"active_energy" json:"active_energy"`
}

// SourceMixSample is an instantaneous breakdown of grid generation by
// source. There is no facility dimension; the mix is grid-wide.
type SourceMixSample struct {
	Timestamp               time.Time `db:"timestamp" json:"timestamp"`
	Renewable               float64   `db:"renewable" json:"renewable"`
	RenewableBiomass        float64   `db:"renewable_biomass" json:"renewable_biomass"`
	RenewableHydro          float64   `db:"renewable_hydro" json:"renewable_hydro"`
	RenewableSolar          float64   `db:"renewable_solar" json:"renewable_solar"`
	RenewableWind           float64   `db:"renewable_wind" json:"renewable_wind"`
	RenewableGeothermal     float64   `db:"renewable_geothermal" json:"renewable_geothermal"`
	RenewableOtherRenewable float64   `db:"renewable_otherrenewable" json:"renewable_otherrenewable"`
	NonRenewable            float64   `db:"nonrenewable" json:"nonrenewable"`
	NonRenewableCoal        float64   `db:"nonrenewable_coal" json:"nonrenewable_coal"`
	NonRenewableGas         float64   `db:"nonrenewable_gas" json:"nonrenewable_gas"`
	NonRenewableNuclear     float64   `db:"nonrenewable_nuclear" json:"nonrenewable_nuclear"`
	NonRenewableOil         float64   `db:"nonrenewable_oil" json:"nonrenewable_oil"`
	HydroPumpedStorage      float64   `db:"hydropumpedstorage" json:"hydropumpedstorage"`
	Unknown                 float64   `db:"unknown" json:"unknown"`
}

// Account is persisted for the auth layer; the core only seeds it.
type Account struct {
	ID           int64  `db:"id" json:"id"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
}
