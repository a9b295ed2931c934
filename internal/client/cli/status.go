package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/client/auth"
)

// RunStatus печатает состояние авторизации и синхронизации
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.RunVersion()
	c.io.Println()

	authData, err := c.authService.GetAuth(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Device: Not logged in")
		c.io.Println("Run 'docsync login' to store a device token.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		c.io.Printf("Device: %s\n", authData.NodeID)
		c.io.Printf("Server: %s\n", authData.ServerURL)
		if authData.ExpiresAt == 0 {
			c.io.Println("Token expires: never")
		} else {
			expiresAt := time.Unix(authData.ExpiresAt, 0)
			c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			if remaining := expiresAt.Sub(c.now()); remaining <= 0 {
				c.io.Println("⚠️  Token has expired. Ask for a new one and run 'docsync login'.")
			}
		}
	}

	c.io.Println()

	// Получаем количество документов, ожидающих синхронизации
	pendingCount, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		// Не прерываем выполнение
		c.io.Printf("Warning: Failed to get pending sync count: %v\n", err)
	} else if pendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d document(s) waiting to be synchronized\n", pendingCount)
	} else {
		c.io.Println("✓ All documents synchronized with server")
	}

	conflicts, err := c.conflicts.ListPendingConflicts(ctx)
	if err != nil {
		c.io.Printf("Warning: Failed to list conflicts: %v\n", err)
	} else if len(conflicts) > 0 {
		c.io.Printf("⚠️  Pending conflicts: %d, run 'docsync conflicts'\n", len(conflicts))
	}

	return nil
}

// RunVersion печатает версию клиента
func (c *Cli) RunVersion() {
	c.io.Printf("docsync %s\n", c.version)
}
