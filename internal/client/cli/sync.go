package cli

import (
	"context"
	"fmt"
)

// RunSync синхронизирует локальные документы с сервером
func (c *Cli) RunSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	accessToken, err := c.authService.Token(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.Sync(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed")
	c.io.Printf("Pushed to server:   %d document(s), %d accepted\n", result.PushedDocuments, result.AcceptedPushes)
	c.io.Printf("Pulled from server: %d revision(s)\n", result.PulledDocuments)
	c.io.Printf("Applied locally:    %d revision(s)\n", result.MergedDocuments)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts:          %d (resolved %d, deferred %d)\n", result.Conflicts, result.Resolved, result.Deferred)
	}
	if result.SkippedDocuments > 0 {
		c.io.Printf("Skipped (errors):   %d\n", result.SkippedDocuments)
	}
	if result.Deferred > 0 {
		c.io.Println()
		c.io.Println("Run 'docsync conflicts' to review deferred conflicts.")
	}

	return nil
}
