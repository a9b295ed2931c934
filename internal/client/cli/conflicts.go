package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// RunConflicts печатает отложенные конфликты
func (c *Cli) RunConflicts(ctx context.Context) error {
	pending, err := c.conflicts.ListPendingConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(pending) == 0 {
		c.io.Println("No pending conflicts.")
		return nil
	}

	c.io.Printf("=== Pending conflicts (%d) ===\n", len(pending))
	for _, pc := range pending {
		if err := conflictTmpl.Execute(c.io, pc); err != nil {
			return fmt.Errorf("failed to render conflict: %w", err)
		}
	}
	c.io.Println()
	c.io.Println("Run 'docsync resolve <path>' to decide.")

	return nil
}

// RunResolve повторно открывает отложенный конфликт
func (c *Cli) RunResolve(ctx context.Context, path string) error {
	out, err := c.syncService.ResolvePending(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			return fmt.Errorf("no pending conflict for %s", path)
		}
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	switch out.Action {
	case models.ActionKeepLeft:
		c.io.Printf("✓ Kept local version of %s\n", path)
	case models.ActionKeepRight:
		c.io.Printf("✓ Kept remote version of %s (revision %s)\n", path, out.RevisionID)
	case models.ActionConcatenateBoth:
		c.io.Printf("✓ Concatenated both versions of %s, edit and sync to finish the merge\n", path)
	case models.ActionCancelled:
		c.io.Printf("Conflict for %s is still pending (%s)\n", path, out.Cause)
		return nil
	}

	c.io.Println("Run 'docsync sync' to push the decision.")
	return nil
}
