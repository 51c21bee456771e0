package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/builtrix-tech/metergrid/internal/config"
	"github.com/builtrix-tech/metergrid/internal/ingest"
)

// Generates the three CSV input files with random data into DATA_DIR, for
// local development against an empty database.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create data dir")
	}

	facilities := []struct {
		cpe, name string
		lat, lon  float64
	}{
		{"CPE001", "Building A", 38.736946, -9.142685},
		{"CPE002", "Building B", 38.722252, -9.139337},
		{"CPE003", "Building C", 38.707751, -9.136592},
	}

	var md strings.Builder
	md.WriteString("cpe,lat,lon,totalarea,name,fulladdress\n")
	for _, f := range facilities {
		fmt.Fprintf(&md, "%s,%f,%f,%.1f,%s,Av. da Liberdade %d\n",
			f.cpe, f.lat, f.lon, 100+rand.Float64()*400, f.name, rand.Intn(200)+1)
	}
	write(dir, ingest.MetadataFile, md.String())

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	days := 7

	var sm strings.Builder
	sm.WriteString("cpe,timestamp,active_energy\n")
	for _, f := range facilities {
		for ts := start; ts.Before(start.AddDate(0, 0, days)); ts = ts.Add(15 * time.Minute) {
			fmt.Fprintf(&sm, "%s,%s,%.3f\n", f.cpe, ts.Format("02-01-2006 15:04"), 1+rand.Float64()*4)
		}
	}
	write(dir, ingest.ReadingsFile, sm.String())

	var esb strings.Builder
	esb.WriteString("timestamp,renewable,renewable_biomass,renewable_hydro,renewable_solar," +
		"renewable_wind,renewable_geothermal,renewable_otherrenewable,nonrenewable," +
		"nonrenewable_coal,nonrenewable_gas,nonrenewable_nuclear,nonrenewable_oil," +
		"hydropumpedstorage,unknown\n")
	for ts := start; ts.Before(start.AddDate(0, 0, days)); ts = ts.Add(15 * time.Minute) {
		ren := 0.3 + rand.Float64()*0.4
		fmt.Fprintf(&esb, "%s,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f,%.3f\n",
			ts.Format("02-01-2006 15:04"),
			ren, ren*0.1, ren*0.3, ren*0.25, ren*0.3, 0.0, ren*0.05,
			1-ren, (1-ren)*0.2, (1-ren)*0.5, (1-ren)*0.2, (1-ren)*0.1,
			rand.Float64()*0.05, rand.Float64()*0.02)
	}
	write(dir, ingest.SourceMixFile, esb.String())

	log.Info().Str("dir", dir).Msg("sample data written")
}

func write(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("write failed")
	}
}
