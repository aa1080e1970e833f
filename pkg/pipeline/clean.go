package pipeline

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/BrewLake/pkg/model"
	"droscher.com/BrewLake/pkg/storage"
)

const unknownAddress = "Unknown"

// Cleaner derives the silver layer from the bronze snapshot.
type Cleaner struct {
	layout storage.Layout
	logger *zap.Logger
}

func NewCleaner(layout storage.Layout, logger *zap.Logger) *Cleaner {
	return &Cleaner{layout: layout, logger: logger}
}

func (c *Cleaner) Name() string { return "clean" }

func (c *Cleaner) Run(_ context.Context) error {
	bronze, err := storage.ReadSnapshot[model.BronzeRow](c.layout.Bronze())
	if err != nil {
		return err
	}

	silver := c.Clean(bronze)

	if err := storage.WriteSnapshot(c.layout.Silver(), silver); err != nil {
		return err
	}

	c.logger.Info("silver snapshot written",
		zap.String("path", c.layout.Silver()), zap.Int("records", len(silver)))

	return nil
}

// Clean applies the silver rules to landed rows. Rows missing an identifier
// or name are dropped and counted. Duplicate identifiers keep the first
// occurrence in page order. Coordinates that are absent or fail to parse to
// a plausible value are nulled per field; the row survives. Never produces
// more rows than it was given.
func (c *Cleaner) Clean(bronze []model.BronzeRow) []model.SilverRow {
	seen := make(map[string]struct{}, len(bronze))
	silver := make([]model.SilverRow, 0, len(bronze))

	var invalid, duplicates int

	for index := range bronze {
		row := &bronze[index]

		if strings.TrimSpace(row.ID) == "" || strings.TrimSpace(row.Name) == "" {
			invalid++

			continue
		}

		if _, dup := seen[row.ID]; dup {
			duplicates++

			continue
		}
		seen[row.ID] = struct{}{}

		silver = append(silver, model.SilverRow{
			BreweryID:   row.ID,
			Name:        strings.ToUpper(row.Name),
			BreweryType: row.BreweryType,
			Address:     addressOrUnknown(row.Address1),
			City:        row.City,
			State:       row.StateProvince,
			PostalCode:  row.PostalCode,
			Country:     row.Country,
			Longitude:   parseCoordinate(row.Longitude, 180),
			Latitude:    parseCoordinate(row.Latitude, 90),
			Phone:       row.Phone,
			WebsiteURL:  row.WebsiteURL,
		})
	}

	c.logger.Info("cleansed bronze rows",
		zap.Int("input", len(bronze)),
		zap.Int("output", len(silver)),
		zap.Int("dropped_invalid", invalid),
		zap.Int("dropped_duplicates", duplicates))

	return silver
}

// parseCoordinate turns the API's string coordinates into their numeric
// domain. The v1 API is known to emit "None" and "nan" literals; those and
// out-of-range values come back nil rather than failing the row.
func parseCoordinate(raw *string, bound float64) *float64 {
	if raw == nil {
		return nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(value) || math.Abs(value) > bound {
		return nil
	}

	return pointy.Float64(value)
}

func addressOrUnknown(address *string) string {
	if address == nil || strings.TrimSpace(*address) == "" {
		return unknownAddress
	}

	return *address
}
