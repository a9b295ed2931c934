package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/token"
	"github.com/iudanet/docsync/internal/validation"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a device token",
	Long: `Issue a token for a device. The previous token of the same device
stops working. Pass the printed token to 'docsync login' on the device.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodeID, _ := cmd.Flags().GetString("node")
		if err := validation.ValidateNodeID(nodeID); err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		tokens, err := token.NewService(e.cfg.JWTSecret, e.cfg.TokenTTL)
		if err != nil {
			return err
		}

		signed, claims, err := tokens.Issue(nodeID)
		if err != nil {
			return err
		}

		device := &models.Device{
			NodeID:    nodeID,
			TokenID:   claims.ID,
			IssuedAt:  claims.IssuedAt.Time,
			ExpiresAt: claims.Expiry(),
		}
		if err := e.store.SaveDevice(cmd.Context(), device); err != nil {
			return err
		}

		e.logger.Info("Device token issued", "node_id", nodeID, "token_id", claims.ID, "expires_at", device.ExpiresAt)

		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke <node-id>",
	Short: "Revoke the token of a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.RevokeDevice(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, storage.ErrDeviceNotFound) {
				return fmt.Errorf("no device %q", args[0])
			}
			return err
		}

		e.logger.Info("Device revoked", "node_id", args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Revoked %s\n", args[0])
		return nil
	},
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List registered devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		devices, err := e.store.ListDevices(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NODE\tISSUED\tEXPIRES\tSTATE")
		for _, d := range devices {
			expires := "never"
			if !d.ExpiresAt.IsZero() {
				expires = d.ExpiresAt.Local().Format(time.DateTime)
			}
			state := "active"
			switch {
			case d.Revoked:
				state = "revoked"
			case !d.Active(d.TokenID, now):
				state = "expired"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.NodeID, d.IssuedAt.Local().Format(time.DateTime), expires, state)
		}
		return w.Flush()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "docsync-server %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
	},
}

func init() {
	tokenCmd.Flags().String("node", "", "node id of the device")
	_ = tokenCmd.MarkFlagRequired("node")

	rootCmd.AddCommand(tokenCmd, revokeCmd, devicesCmd, versionCmd)
}
