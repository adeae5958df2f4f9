package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addressCmd(c *cli) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the camo address of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			addr, _, err := c.wire.Wallet.AccountAddress(c.passphrase, index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&index, "index", 0, "account index")
	return cmd
}

func fingerprintCmd(c *cli) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the spend key fingerprint of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			_, fp, err := c.wire.Wallet.AccountAddress(c.passphrase, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&index, "index", 0, "account index")
	return cmd
}

func accountsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts derived so far (public data only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := c.wire.Accounts.ListAccountProfiles()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range profiles {
				vs := make([]string, len(p.Versions))
				for i, v := range p.Versions {
					vs[i] = fmt.Sprintf("v%d", v)
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t{%s}\n", p.Index, p.Fingerprint, p.Address, strings.Join(vs, ","))
			}
			return nil
		},
	}
}
