package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"github.com/vskvj3/nbtkit/internal/utils"
)

// app carries the state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	cfgFile string
	suite   string

	cfg *utils.Config
}

// newRootCmd builds the full command tree. Each call returns an independent
// tree so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "nbtkit",
		Short: "Inspect NBT/SMB error codes and hex dump protocol data",
		Long: `nbtkit exposes the coded-error registries used by the NetBIOS over TCP
and SMB layers, and renders binary captures as hex dumps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return utils.CloseLogger()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ~/.nbtkit/nbtkit.yaml)")
	root.PersistentFlags().StringVar(&a.suite, "suite", "", "error suite to use (nbt, smb)")

	root.AddCommand(
		newCodesCmd(a),
		newDescribeCmd(a),
		newRaiseCmd(a),
		newHexdumpCmd(a),
		newHexstrCmd(a),
		newNTStatusCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		path = utils.DefaultConfigPath()
	}
	cfg, err := utils.LoadConfig(path)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	a.cfg = cfg

	logger, err := utils.NewLogger(cfg.LogFile, cmd.ErrOrStderr(), cfg.Debug, cfg.Color)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", utils.Field{Key: "path", Value: path})
	return nil
}

// registry resolves --suite, falling back to the configured default suite.
func (a *app) registry() (*codederr.Registry, error) {
	if a.suite != "" {
		return codederr.Suite(a.suite)
	}
	return a.cfg.Registry()
}
