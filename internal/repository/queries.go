package repository

import "github.com/huandu/go-sqlbuilder"

// Filter scopes a consumption query. Zero values mean the parameter was not
// supplied and contribute no predicate; every supplied value becomes exactly
// one bound equality predicate, AND-combined with the rest.
type Filter struct {
	Year     int
	Month    int
	Day      int
	Building string
}

// sourceMixColumns is the full energy_source_breakdown column set, in the
// order the input files carry them.
var sourceMixColumns = []string{
	"timestamp",
	"renewable",
	"renewable_biomass",
	"renewable_hydro",
	"renewable_solar",
	"renewable_wind",
	"renewable_geothermal",
	"renewable_otherrenewable",
	"nonrenewable",
	"nonrenewable_coal",
	"nonrenewable_gas",
	"nonrenewable_nuclear",
	"nonrenewable_oil",
	"hydropumpedstorage",
	"unknown",
}

func whereYear(sb *sqlbuilder.SelectBuilder, col string, year int) {
	if year != 0 {
		sb.Where(sb.Equal("EXTRACT(YEAR FROM "+col+")", year))
	}
}

func whereMonth(sb *sqlbuilder.SelectBuilder, col string, month int) {
	if month != 0 {
		sb.Where(sb.Equal("EXTRACT(MONTH FROM "+col+")", month))
	}
}

func whereDay(sb *sqlbuilder.SelectBuilder, col string, day int) {
	if day != 0 {
		sb.Where(sb.Equal("EXTRACT(DAY FROM "+col+")", day))
	}
}

func whereBuilding(sb *sqlbuilder.SelectBuilder, building string) {
	if building != "" {
		sb.Where(sb.Equal("sm.cpe", building))
	}
}

// facilityListingQuery returns every facility with its lifetime consumption
// total. The total is deliberately unscoped: it ignores any active filter.
func facilityListingQuery() (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"cpe", "lat", "lon", "totalarea", "name", "fulladdress",
		"(SELECT SUM(active_energy) FROM smart_meter WHERE smart_meter.cpe = metadata.cpe) AS total_consumption",
	)
	sb.From("metadata")
	sb.OrderBy("name")
	return sb.Build()
}

func monthlyQuery(f Filter) (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"sm.cpe",
		"md.name",
		"EXTRACT(YEAR FROM sm.timestamp)::int AS year",
		"EXTRACT(MONTH FROM sm.timestamp)::int AS month",
		"SUM(sm.active_energy) AS total_consumption",
	)
	sb.From("smart_meter sm")
	sb.Join("metadata md", "sm.cpe = md.cpe")
	whereYear(sb, "sm.timestamp", f.Year)
	whereBuilding(sb, f.Building)
	sb.GroupBy("sm.cpe", "md.name", "year", "month")
	sb.OrderBy("year", "month", "md.name")
	return sb.Build()
}

func dailyQuery(f Filter) (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"sm.cpe",
		"md.name",
		"EXTRACT(YEAR FROM sm.timestamp)::int AS year",
		"EXTRACT(MONTH FROM sm.timestamp)::int AS month",
		"EXTRACT(DAY FROM sm.timestamp)::int AS day",
		"SUM(sm.active_energy) AS total_consumption",
	)
	sb.From("smart_meter sm")
	sb.Join("metadata md", "sm.cpe = md.cpe")
	whereYear(sb, "sm.timestamp", f.Year)
	whereMonth(sb, "sm.timestamp", f.Month)
	whereBuilding(sb, f.Building)
	sb.GroupBy("sm.cpe", "md.name", "year", "month", "day")
	sb.OrderBy("year", "month", "day", "md.name")
	return sb.Build()
}

// fifteenMinQuery returns raw readings; limit > 0 caps the result at query
// level so oversized scopes stay bounded.
func fifteenMinQuery(f Filter, limit int) (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("sm.cpe", "md.name", "sm.timestamp", "sm.active_energy")
	sb.From("smart_meter sm")
	sb.Join("metadata md", "sm.cpe = md.cpe")
	whereYear(sb, "sm.timestamp", f.Year)
	whereMonth(sb, "sm.timestamp", f.Month)
	whereDay(sb, "sm.timestamp", f.Day)
	whereBuilding(sb, f.Building)
	sb.OrderBy("sm.timestamp", "md.name")
	if limit > 0 {
		sb.Limit(limit)
	}
	return sb.Build()
}

// sourceMixQuery has no facility dimension; a Building filter is ignored.
func sourceMixQuery(f Filter) (string, []any) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(sourceMixColumns...)
	sb.From("energy_source_breakdown")
	whereYear(sb, "timestamp", f.Year)
	whereMonth(sb, "timestamp", f.Month)
	whereDay(sb, "timestamp", f.Day)
	sb.OrderBy("timestamp")
	return sb.Build()
}
