package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nanocamo/internal/protocol/camo"
)

// send <address>: derive a one-time destination for <address> and publish it.
func sendCmd(c *cli) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "send <camo address>",
		Short: "Pay a camo address and publish the payment to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := camo.ParseAddress(args[0])
			if err != nil {
				return err
			}
			var v camo.Version
			if version != "" {
				if v, err = camo.ParseVersion(version); err != nil {
					return err
				}
			}
			entry, err := c.wire.Payments.SendPayment(cmd.Context(), to, v)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent seq=%d version=%s one-time=%s ephemeral=%s\n",
				entry.Seq, entry.Payment.Version, entry.Payment.OneTimeKey, entry.Payment.EphemeralKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "camo version to use (default: newest both sides support)")
	return cmd
}
