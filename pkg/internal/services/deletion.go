package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"gorm.io/gorm"
)

// PurgeRecords deletes rows of the given kind and applies the deletion
// strategy of every reference pointing at them, in one transaction.
func PurgeRecords(kind string, ids ...uint) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		return purge(tx, kind, ids)
	})
}

func purge(tx *gorm.DB, kind string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	factory, ok := database.Models[kind]
	if !ok {
		return fmt.Errorf("unknown record kind: %s", kind)
	}

	for _, ref := range database.References[kind] {
		refFactory, ok := database.Models[ref.Kind]
		if !ok {
			return fmt.Errorf("unknown record kind: %s", ref.Kind)
		}

		switch ref.Strategy {
		case database.DeleteNullify:
			if err := tx.Model(refFactory()).
				Where(ref.Column+" IN ?", ids).
				Update(ref.Column, nil).Error; err != nil {
				return fmt.Errorf("unable to detach %s from %s: %v", ref.Kind, kind, err)
			}
		case database.DeleteCascade:
			var children []uint
			if err := tx.Model(refFactory()).
				Where(ref.Column+" IN ?", ids).
				Pluck("id", &children).Error; err != nil {
				return fmt.Errorf("unable to collect %s of %s: %v", ref.Kind, kind, err)
			}
			if err := purge(tx, ref.Kind, children); err != nil {
				return err
			}
		}
	}

	return tx.Where("id IN ?", ids).Delete(factory()).Error
}
