package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nanocamo/internal/app"
)

func initCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a wallet and print its recovery mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			mnemonic, err := c.wire.Wallet.CreateWallet(c.passphrase)
			if err != nil {
				return err
			}
			if err := app.SaveConfig(c.wire.Config); err != nil {
				return err
			}
			addr, fp, err := c.wire.Wallet.AccountAddress(c.passphrase, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wallet created. Write down these words; they are the only backup:\n\n%s\n\n", mnemonic)
			fmt.Fprintf(out, "Address:     %s\nFingerprint: %s\n", addr, fp)
			return nil
		},
	}
}

func importCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import [mnemonic words...]",
		Short: "Create a wallet from an existing mnemonic (args or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			mnemonic := strings.Join(args, " ")
			if mnemonic == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read mnemonic: %w", err)
				}
				mnemonic = line
			}
			if err := c.wire.Wallet.ImportWallet(c.passphrase, mnemonic); err != nil {
				return err
			}
			if err := app.SaveConfig(c.wire.Config); err != nil {
				return err
			}
			addr, _, err := c.wire.Wallet.AccountAddress(c.passphrase, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet imported.\nAddress: %s\n", addr)
			return nil
		},
	}
}
