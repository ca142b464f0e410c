// Package cascade applies category directory changes to the entity stores.
// The directory itself never touches tasks or events; every mutation flows
// out of it as an explicit Change, and the coordinator here translates that
// into store writes and a view refresh.
package cascade

import (
	"fmt"

	"github.com/lininnin/mindtrack/internal/category"
	"github.com/lininnin/mindtrack/internal/logger"
	"github.com/lininnin/mindtrack/internal/models"
)

// CategoryStore is the store surface the coordinator writes through.
type CategoryStore interface {
	SaveCategory(cat models.Category) error
	DeleteCategory(id string) error
	ClearCategoryRefs(categoryID string) (int, error)
}

// Coordinator persists directory changes and notifies the view layer.
type Coordinator struct {
	store CategoryStore

	// OnChange, when set, runs after a change has been applied. The today
	// view registers its refresh here.
	OnChange func()
}

func NewCoordinator(store CategoryStore) *Coordinator {
	return &Coordinator{store: store}
}

// Apply persists a single directory change. A rename arrives as one Change
// carrying both the removed and added entries with the same id, so it is a
// single upsert rather than a delete-insert pair; referencing entities keep
// their category id and pick up the new name on the next resolve. A remove
// clears references first, then deletes the category row.
func (c *Coordinator) Apply(change *category.Change) error {
	if change == nil {
		return nil
	}

	switch change.Kind {
	case category.ChangeAdded, category.ChangeRenamed:
		if change.Added == nil {
			return fmt.Errorf("category change %s carries no entry", change.Kind)
		}
		if err := c.store.SaveCategory(*change.Added); err != nil {
			return fmt.Errorf("failed to save category: %w", err)
		}
	case category.ChangeRemoved:
		if change.Removed == nil {
			return fmt.Errorf("category change %s carries no entry", change.Kind)
		}
		cleared, err := c.store.ClearCategoryRefs(change.Removed.ID)
		if err != nil {
			return fmt.Errorf("failed to clear category references: %w", err)
		}
		if cleared > 0 {
			logger.Debug("cleared category references", "category", change.Removed.Name, "count", cleared)
		}
		if err := c.store.DeleteCategory(change.Removed.ID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
	default:
		return fmt.Errorf("unknown category change kind %q", change.Kind)
	}

	if c.OnChange != nil {
		c.OnChange()
	}
	return nil
}
