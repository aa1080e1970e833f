package model

// DimLocation is one unique (city, state, country) tuple with its surrogate
// key. Keys are assigned per run and are not stable across runs.
type DimLocation struct {
	LocationKey int64  `gorm:"primaryKey;autoIncrement:false;column:location_key"`
	City        string `gorm:"column:city;uniqueIndex:idx_location_natural"`
	State       string `gorm:"column:state;uniqueIndex:idx_location_natural"`
	Country     string `gorm:"column:country;uniqueIndex:idx_location_natural"`
}

func (DimLocation) TableName() string { return "dim_location" }

// DimBreweryType is one unique brewery-type category with its surrogate key.
type DimBreweryType struct {
	TypeKey     int64  `gorm:"primaryKey;autoIncrement:false;column:type_key"`
	BreweryType string `gorm:"column:brewery_type;uniqueIndex"`
}

func (DimBreweryType) TableName() string { return "dim_brewery_type" }

// FactBrewery is one row per unique brewery, keyed by its natural identifier
// and holding foreign keys into the dimension tables.
type FactBrewery struct {
	BreweryID   string   `gorm:"primaryKey;column:brewery_id"`
	Name        string   `gorm:"column:name"`
	LocationKey int64    `gorm:"column:location_key"`
	TypeKey     int64    `gorm:"column:type_key"`
	Longitude   *float64 `gorm:"column:longitude"`
	Latitude    *float64 `gorm:"column:latitude"`
}

func (FactBrewery) TableName() string { return "fact_breweries" }

// GoldTables is the complete star schema produced by one modeling pass.
type GoldTables struct {
	Locations []DimLocation
	Types     []DimBreweryType
	Facts     []FactBrewery
}
