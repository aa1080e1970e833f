package pipeline

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"droscher.com/BrewLake/configs"
	"droscher.com/BrewLake/pkg/integrations"
	"droscher.com/BrewLake/pkg/model"
	"droscher.com/BrewLake/pkg/storage"
)

// ErrNoData means the source returned zero records for the whole run. An
// empty bronze layer would silently wipe the downstream tables on the next
// stages, so this aborts instead.
var ErrNoData = errors.New("no records extracted")

// Extractor fetches the paginated source until an empty page and lands all
// records as one bronze snapshot.
type Extractor struct {
	source   integrations.Source
	layout   storage.Layout
	maxPages int
	runID    string
	logger   *zap.Logger
}

func NewExtractor(conf *configs.Config, source integrations.Source, layout storage.Layout, runID string, logger *zap.Logger) *Extractor {
	return &Extractor{
		source:   source,
		layout:   layout,
		maxPages: conf.Source.MaxPages,
		runID:    runID,
		logger:   logger,
	}
}

func (e *Extractor) Name() string { return "extract" }

func (e *Extractor) Run(ctx context.Context) error {
	var rows []model.BronzeRow

	for page := 1; e.maxPages == 0 || page <= e.maxPages; page++ {
		rawPage, err := e.source.FetchPage(ctx, page)
		if err != nil {
			return err
		}

		if len(rawPage.Breweries) == 0 {
			break
		}

		fetchedAt := time.Now().UTC()
		for _, brewery := range rawPage.Breweries {
			rows = append(rows, model.NewBronzeRow(brewery, e.runID, rawPage.Number, fetchedAt))
		}

		e.logger.Info("page landed", zap.Int("page", page), zap.Int("records", len(rawPage.Breweries)))
	}

	if len(rows) == 0 {
		return ErrNoData
	}

	if err := storage.WriteSnapshot(e.layout.Bronze(), rows); err != nil {
		return err
	}

	e.logger.Info("bronze snapshot written",
		zap.String("path", e.layout.Bronze()), zap.Int("records", len(rows)))

	return nil
}
