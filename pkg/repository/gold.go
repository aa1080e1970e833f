package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/BrewLake/pkg/model"
)

const insertBatchSize = 500

// Migrate creates or upgrades the gold-table schema.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(
		&model.DimLocation{}, &model.DimBreweryType{}, &model.FactBrewery{})
}

// ReplaceGold rebuilds the warehouse gold tables from one modeling pass.
// Prior rows are deleted and the new tables inserted in a single transaction,
// so readers never observe a half-rebuilt star schema. Facts are deleted
// first and inserted last to keep foreign keys resolvable throughout.
func (r *Repository) ReplaceGold(ctx context.Context, gold *model.GoldTables) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		for _, table := range []any{&model.FactBrewery{}, &model.DimLocation{}, &model.DimBreweryType{}} {
			if result := session.Delete(table); result.Error != nil {
				return result.Error
			}
		}

		if len(gold.Locations) > 0 {
			if result := tx.CreateInBatches(gold.Locations, insertBatchSize); result.Error != nil {
				return result.Error
			}
		}

		if len(gold.Types) > 0 {
			if result := tx.CreateInBatches(gold.Types, insertBatchSize); result.Error != nil {
				return result.Error
			}
		}

		if len(gold.Facts) > 0 {
			if result := tx.CreateInBatches(gold.Facts, insertBatchSize); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

// GoldCounts reports row counts per gold table, used for the run summary.
func (r *Repository) GoldCounts(ctx context.Context) (locations, types, facts int64, err error) {
	db := r.DB.WithContext(ctx)

	if result := db.Model(&model.DimLocation{}).Count(&locations); result.Error != nil {
		return 0, 0, 0, result.Error
	}

	if result := db.Model(&model.DimBreweryType{}).Count(&types); result.Error != nil {
		return 0, 0, 0, result.Error
	}

	if result := db.Model(&model.FactBrewery{}).Count(&facts); result.Error != nil {
		return 0, 0, 0, result.Error
	}

	return locations, types, facts, nil
}
