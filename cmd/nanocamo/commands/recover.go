package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nanocamo/internal/domain"
)

// recover <seq>: print the one-time private key for a payment to an account.
func recoverCmd(c *cli) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "recover <seq>",
		Short: "Print the one-time private key of a detected payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			seq, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("seq: %w", err)
			}
			acct, err := c.wire.Wallet.OpenAccount(c.passphrase, index)
			if err != nil {
				return err
			}
			defer acct.Destroy()

			key, p, err := c.wire.Scanner.RecoverKey(cmd.Context(), acct, domain.Sequence(seq))
			if err != nil {
				return err
			}
			defer key.Destroy()
			fmt.Fprintln(cmd.ErrOrStderr(), "The private key below spends this payment. Keep it private.")
			fmt.Fprintf(cmd.OutOrStdout(), "one-time=%s\nprivate=%s\n", p.OneTimeKey, hex.EncodeToString(key.Bytes()))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&index, "index", 0, "account index")
	return cmd
}
