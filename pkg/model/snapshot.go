package model

import "time"

// BronzeRow is one brewery record landed verbatim in the bronze snapshot,
// plus ingestion metadata. Source values are not reshaped here; fidelity to
// the API response is the contract.
type BronzeRow struct {
	ID            string  `parquet:"id"`
	Name          string  `parquet:"name"`
	BreweryType   string  `parquet:"brewery_type"`
	Address1      *string `parquet:"address_1,optional"`
	Address2      *string `parquet:"address_2,optional"`
	Address3      *string `parquet:"address_3,optional"`
	City          *string `parquet:"city,optional"`
	StateProvince *string `parquet:"state_province,optional"`
	PostalCode    *string `parquet:"postal_code,optional"`
	Country       *string `parquet:"country,optional"`
	Longitude     *string `parquet:"longitude,optional"`
	Latitude      *string `parquet:"latitude,optional"`
	Phone         *string `parquet:"phone,optional"`
	WebsiteURL    *string `parquet:"website_url,optional"`
	State         *string `parquet:"state,optional"`
	Street        *string `parquet:"street,optional"`

	// Ingestion metadata
	RunID     string    `parquet:"run_id"`
	Page      int32     `parquet:"page"`
	FetchedAt time.Time `parquet:"fetched_at,timestamp(millisecond)"`
}

// NewBronzeRow lands a fetched brewery with its ingestion metadata.
func NewBronzeRow(brewery Brewery, runID string, page int, fetchedAt time.Time) BronzeRow {
	return BronzeRow{
		ID:            brewery.ID,
		Name:          brewery.Name,
		BreweryType:   brewery.BreweryType,
		Address1:      brewery.Address1,
		Address2:      brewery.Address2,
		Address3:      brewery.Address3,
		City:          brewery.City,
		StateProvince: brewery.StateProvince,
		PostalCode:    brewery.PostalCode,
		Country:       brewery.Country,
		Longitude:     brewery.Longitude,
		Latitude:      brewery.Latitude,
		Phone:         brewery.Phone,
		WebsiteURL:    brewery.WebsiteURL,
		State:         brewery.State,
		Street:        brewery.Street,
		RunID:         runID,
		Page:          int32(page),
		FetchedAt:     fetchedAt,
	}
}

// SilverRow is one cleansed brewery: deduplicated by identifier, mandatory
// fields present, coordinates parsed to their numeric domain or nulled.
type SilverRow struct {
	BreweryID   string   `parquet:"brewery_id"`
	Name        string   `parquet:"name"`
	BreweryType string   `parquet:"brewery_type"`
	Address     string   `parquet:"address"`
	City        *string  `parquet:"city,optional"`
	State       *string  `parquet:"state,optional"`
	PostalCode  *string  `parquet:"postal_code,optional"`
	Country     *string  `parquet:"country,optional"`
	Longitude   *float64 `parquet:"longitude,optional"`
	Latitude    *float64 `parquet:"latitude,optional"`
	Phone       *string  `parquet:"phone,optional"`
	WebsiteURL  *string  `parquet:"website_url,optional"`
}
