package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RunLogin сохраняет токен устройства; пустой token запрашивается интерактивно
func (c *Cli) RunLogin(ctx context.Context, token string) error {
	c.io.Println("=== Login ===")

	token = strings.TrimSpace(token)
	if token == "" {
		var err error
		token, err = c.io.ReadPassword("Device token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(token)
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	authData, err := c.authService.Login(ctx, token)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Device: %s\n", authData.NodeID)
	if authData.ExpiresAt != 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(authData.ExpiresAt, 0).Format(time.RFC3339))
	}

	return nil
}

// RunLogout удаляет токен устройства
func (c *Cli) RunLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Local documents are kept.")

	return nil
}
