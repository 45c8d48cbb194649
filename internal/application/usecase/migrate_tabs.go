package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// MigrateTabsUseCase moves tabs from one collection into another.
//
// It is pure domain manipulation: it never creates or closes windows.
// Both the drag/drop path and the context menu go through it.
type MigrateTabsUseCase struct{}

func NewMigrateTabsUseCase() *MigrateTabsUseCase {
	return &MigrateTabsUseCase{}
}

type MigrateTabsInput struct {
	Items       []*entity.TabItem
	Source      *entity.TabCollection
	Destination *entity.TabCollection
	StartIndex  int
}

type MigrateTabsOutput struct {
	Migrated    int
	NextIndex   int  // Destination index following the moved block
	SourceEmpty bool // The caller decides whether to close the source window
}

// MigrationError reports a run that stopped part way. Items moved before the
// failure stay in the destination.
type MigrationError struct {
	Migrated int
	FailedID entity.TabID
	Err      error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration stopped after %d item(s) at %s: %v", e.Migrated, e.FailedID, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

// Execute removes each item from Source and inserts it into Destination at a
// running index, so N items starting at K end up at [K, K+N) in the given
// order. On the first failure it stops and returns the partial output along
// with a *MigrationError. Nothing is rolled back: retrying would move the
// already relocated items twice.
func (uc *MigrateTabsUseCase) Execute(ctx context.Context, input MigrateTabsInput) (*MigrateTabsOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Int("items", len(input.Items)).
		Int("start_index", input.StartIndex).
		Msg("migrating tabs")

	if input.Source == nil || input.Destination == nil {
		return nil, fmt.Errorf("source and destination: %w", entity.ErrCollectionRequired)
	}

	out := &MigrateTabsOutput{NextIndex: input.StartIndex}
	for _, item := range input.Items {
		if err := transferTab(input.Source, input.Destination, item, out.NextIndex); err != nil {
			migErr := &MigrationError{Migrated: out.Migrated, Err: err}
			if item != nil {
				migErr.FailedID = item.ID
			}
			out.SourceEmpty = input.Source.Count() == 0

			log.Warn().
				Err(err).
				Str("tab_id", string(migErr.FailedID)).
				Int("migrated", out.Migrated).
				Msg("tab migration stopped")
			return out, migErr
		}
		out.Migrated++
		out.NextIndex++
	}
	out.SourceEmpty = input.Source.Count() == 0

	log.Info().
		Int("migrated", out.Migrated).
		Int("start_index", input.StartIndex).
		Bool("source_empty", out.SourceEmpty).
		Msg("tabs migrated")

	return out, nil
}

// transferTab moves a single item. When the insert is rejected the item goes
// back to where it was, so each transfer either happens or leaves no trace.
func transferTab(src, dst *entity.TabCollection, item *entity.TabItem, index int) error {
	if item == nil {
		return fmt.Errorf("tab item is required")
	}

	from := src.IndexOf(item.ID)
	removed, err := src.RemoveByID(item.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%s: %w", item.ID, entity.ErrItemNotInSource)
		}
		return err
	}

	if err := dst.Insert(removed, index); err != nil {
		restoreAt := min(max(from, 0), src.Count())
		if restoreErr := src.Insert(removed, restoreAt); restoreErr != nil {
			return errors.Join(err, fmt.Errorf("restore %s: %w", item.ID, restoreErr))
		}
		return err
	}
	return nil
}
