package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"nanocamo/internal/app"
)

var errPassphraseRequired = errors.New("passphrase required (-p)")

// cli carries flag values and the wired app between commands.
type cli struct {
	home       string
	passphrase string
	ledgerURL  string
	logLevel   string
	wire       *app.Wire
}

func (c *cli) requirePassphrase() error {
	if c.passphrase == "" {
		return errPassphraseRequired
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "nanocamo",
		Short:        "Stealth (camo) payments wallet",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				c.home = filepath.Join(dir, ".nanocamo")
			}
			if err := os.MkdirAll(c.home, 0o700); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(c.home)
			if err != nil {
				return err
			}
			if c.ledgerURL != "" {
				cfg.LedgerURL = c.ledgerURL
			}
			if c.logLevel != "" {
				cfg.LogLevel = c.logLevel
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "data dir (default ~/.nanocamo)")
	root.PersistentFlags().StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase protecting the wallet")
	root.PersistentFlags().StringVar(&c.ledgerURL, "ledger", "", "ledger base URL (overrides config)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		initCmd(c),
		importCmd(c),
		addressCmd(c),
		fingerprintCmd(c),
		accountsCmd(c),
		sendCmd(c),
		scanCmd(c),
		exportViewCmd(c),
		recoverCmd(c),
	)
	return root
}

// Execute runs the CLI with os.Args. Ctrl-C cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
