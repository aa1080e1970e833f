package storage

import "path/filepath"

// Layout maps the medallion layers onto a data directory:
// bronze and silver snapshots plus one delimited file per gold table.
type Layout struct {
	Dir string
}

func NewLayout(dir string) Layout {
	return Layout{Dir: dir}
}

func (l Layout) Bronze() string {
	return filepath.Join(l.Dir, "bronze", "breweries_raw.parquet")
}

func (l Layout) Silver() string {
	return filepath.Join(l.Dir, "silver", "breweries_clean.parquet")
}

func (l Layout) Gold(table string) string {
	return filepath.Join(l.Dir, "gold", table+".csv")
}
