package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BrewLake/pkg/model"
	"droscher.com/BrewLake/pkg/repository"
	"droscher.com/BrewLake/pkg/storage"
)

const (
	unknownLocation = "Unknown"
	unknownType     = "unknown"
)

// Modeler derives the gold star schema from the silver snapshot, exports it
// as delimited tables and loads it into the warehouse.
type Modeler struct {
	layout storage.Layout
	repo   *repository.Repository
	logger *zap.Logger
}

func NewModeler(layout storage.Layout, repo *repository.Repository, logger *zap.Logger) *Modeler {
	return &Modeler{layout: layout, repo: repo, logger: logger}
}

func (m *Modeler) Name() string { return "model" }

func (m *Modeler) Run(ctx context.Context) error {
	silver, err := storage.ReadSnapshot[model.SilverRow](m.layout.Silver())
	if err != nil {
		return err
	}

	gold, err := BuildGold(silver)
	if err != nil {
		return err
	}

	var errs error

	multierr.AppendInto(&errs, storage.WriteTable(m.layout.Gold("dim_location"),
		[]string{"location_key", "city", "state", "country"}, locationRows(gold.Locations)))
	multierr.AppendInto(&errs, storage.WriteTable(m.layout.Gold("dim_brewery_type"),
		[]string{"type_key", "brewery_type"}, typeRows(gold.Types)))
	multierr.AppendInto(&errs, storage.WriteTable(m.layout.Gold("fact_breweries"),
		[]string{"brewery_id", "name", "location_key", "type_key", "longitude", "latitude"}, factRows(gold.Facts)))

	if errs != nil {
		return errs
	}

	if err := m.repo.Migrate(ctx); err != nil {
		return fmt.Errorf("warehouse migrate: %w", err)
	}

	if err := m.repo.ReplaceGold(ctx, gold); err != nil {
		return fmt.Errorf("warehouse load: %w", err)
	}

	m.logger.Info("gold tables published",
		zap.Int("locations", len(gold.Locations)),
		zap.Int("types", len(gold.Types)),
		zap.Int("facts", len(gold.Facts)))

	return nil
}

type locationTuple struct {
	City    string
	State   string
	Country string
}

// BuildGold derives the star schema from cleansed rows. Surrogate keys are
// dense ranks over the sorted natural keys, so within a run the same natural
// key always maps to the same key. A row whose city and state are both
// absent joins a designated Unknown location; a blank brewery type joins the
// unknown category. Every silver row maps to exactly one fact row.
func BuildGold(silver []model.SilverRow) (*model.GoldTables, error) {
	locationSet := make(map[locationTuple]struct{})
	typeSet := make(map[string]struct{})

	for index := range silver {
		locationSet[locationFor(&silver[index])] = struct{}{}
		typeSet[typeFor(&silver[index])] = struct{}{}
	}

	locationKeys := make(map[locationTuple]int64, len(locationSet))
	locations := make([]model.DimLocation, 0, len(locationSet))

	for _, tuple := range sortedLocations(locationSet) {
		key := int64(len(locations) + 1)
		locationKeys[tuple] = key
		locations = append(locations, model.DimLocation{
			LocationKey: key,
			City:        tuple.City,
			State:       tuple.State,
			Country:     tuple.Country,
		})
	}

	typeKeys := make(map[string]int64, len(typeSet))
	types := make([]model.DimBreweryType, 0, len(typeSet))

	for _, name := range sortedTypes(typeSet) {
		key := int64(len(types) + 1)
		typeKeys[name] = key
		types = append(types, model.DimBreweryType{TypeKey: key, BreweryType: name})
	}

	facts := make([]model.FactBrewery, 0, len(silver))
	seen := make(map[string]struct{}, len(silver))

	for index := range silver {
		row := &silver[index]

		// Silver is already deduplicated; a repeat here is a logic bug.
		if _, dup := seen[row.BreweryID]; dup {
			return nil, fmt.Errorf("duplicate brewery %s in silver input", row.BreweryID)
		}
		seen[row.BreweryID] = struct{}{}

		facts = append(facts, model.FactBrewery{
			BreweryID:   row.BreweryID,
			Name:        row.Name,
			LocationKey: locationKeys[locationFor(row)],
			TypeKey:     typeKeys[typeFor(row)],
			Longitude:   row.Longitude,
			Latitude:    row.Latitude,
		})
	}

	return &model.GoldTables{Locations: locations, Types: types, Facts: facts}, nil
}

func locationFor(row *model.SilverRow) locationTuple {
	city := deref(row.City)
	state := deref(row.State)

	if city == "" && state == "" {
		return locationTuple{City: unknownLocation, State: unknownLocation, Country: unknownLocation}
	}

	return locationTuple{City: city, State: state, Country: deref(row.Country)}
}

func typeFor(row *model.SilverRow) string {
	if row.BreweryType == "" {
		return unknownType
	}

	return row.BreweryType
}

func sortedLocations(set map[locationTuple]struct{}) []locationTuple {
	tuples := make([]locationTuple, 0, len(set))
	for tuple := range set {
		tuples = append(tuples, tuple)
	}

	sort.Slice(tuples, func(i, j int) bool {
		if tuples[i].State != tuples[j].State {
			return tuples[i].State < tuples[j].State
		}
		if tuples[i].City != tuples[j].City {
			return tuples[i].City < tuples[j].City
		}

		return tuples[i].Country < tuples[j].Country
	})

	return tuples
}

func sortedTypes(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func locationRows(locations []model.DimLocation) [][]string {
	rows := make([][]string, 0, len(locations))
	for _, location := range locations {
		rows = append(rows, []string{
			strconv.FormatInt(location.LocationKey, 10),
			location.City,
			location.State,
			location.Country,
		})
	}

	return rows
}

func typeRows(types []model.DimBreweryType) [][]string {
	rows := make([][]string, 0, len(types))
	for _, breweryType := range types {
		rows = append(rows, []string{
			strconv.FormatInt(breweryType.TypeKey, 10),
			breweryType.BreweryType,
		})
	}

	return rows
}

func factRows(facts []model.FactBrewery) [][]string {
	rows := make([][]string, 0, len(facts))
	for _, fact := range facts {
		rows = append(rows, []string{
			fact.BreweryID,
			fact.Name,
			strconv.FormatInt(fact.LocationKey, 10),
			strconv.FormatInt(fact.TypeKey, 10),
			formatCoordinate(fact.Longitude),
			formatCoordinate(fact.Latitude),
		})
	}

	return rows
}

func formatCoordinate(value *float64) string {
	if value == nil {
		return ""
	}

	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
