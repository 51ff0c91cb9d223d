package main

import (
	"github.com/spf13/cobra"

	"github.com/hexmind/hexengine/internal/config"
	"github.com/hexmind/hexengine/internal/engine"
	"github.com/hexmind/hexengine/internal/httpapi"
	"github.com/hexmind/hexengine/internal/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			z, err := logging.New(cfg.LogMode)
			if err != nil {
				return err
			}
			defer z.Sync() //nolint:errcheck
			logger := logging.NewEngineLogger(z)

			srv := httpapi.NewServer(engine.New(logger), logger)
			logger.Info("listening", engine.String("addr", cfg.ListenAddr))
			return srv.Router().Run(cfg.ListenAddr)
		},
	}
}
