package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nanocamo/internal/crypto"
	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
)

// scan: page through the ledger and list payments to one account.
func scanCmd(c *cli) *cobra.Command {
	var (
		index    uint32
		viewKeys string
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find ledger payments to an account",
		Long: "Scan the ledger from the last saved position. With --view-keys the scan " +
			"uses exported view-only keys and needs no passphrase.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys domain.PaymentDetector
			if viewKeys != "" {
				vk, err := parseViewKeys(viewKeys)
				if err != nil {
					return err
				}
				defer vk.Destroy()
				keys = vk
			} else {
				if err := c.requirePassphrase(); err != nil {
					return err
				}
				acct, err := c.wire.Wallet.OpenAccount(c.passphrase, index)
				if err != nil {
					return err
				}
				defer acct.Destroy()
				keys = acct
			}

			res, err := c.wire.Scanner.ScanPayments(cmd.Context(), keys)
			out := cmd.OutOrStdout()
			for _, d := range res.Detected {
				p := d.Entry.Payment
				fmt.Fprintf(out, "seq=%d id=%s version=%s one-time=%s\n", d.Entry.Seq, d.ID, p.Version, p.OneTimeKey)
			}
			fmt.Fprintf(out, "scanned %d, detected %d, cursor %d\n", res.Scanned, len(res.Detected), res.Cursor)
			return err
		},
	}
	cmd.Flags().Uint32Var(&index, "index", 0, "account index")
	cmd.Flags().StringVar(&viewKeys, "view-keys", "", "hex view keys from export-view")
	return cmd
}

func parseViewKeys(s string) (*camo.ViewKeys, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("view keys: %w", err)
	}
	secret := crypto.NewSecretBytes(raw)
	defer secret.Destroy()
	return camo.ImportViewKeys(secret)
}

// export-view: print view-only keys for an account.
func exportViewCmd(c *cli) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "export-view",
		Short: "Print view-only keys (can detect, cannot spend)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			exported, err := c.wire.Wallet.ExportViewKeys(c.passphrase, index)
			if err != nil {
				return err
			}
			defer exported.Destroy()
			fmt.Fprintln(cmd.ErrOrStderr(), "These keys reveal every payment to this account. Keep them private.")
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(exported.Bytes()))
			return nil
		},
	}
	cmd.Flags().Uint32Var(&index, "index", 0, "account index")
	return cmd
}
