package main

import (
	"net/http"

	"github.com/cyberweblabs/propdata/internal/rates"
	"github.com/cyberweblabs/propdata/internal/server"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCommand starts the HTTP server with the browser UI.
func serveCommand() *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser UI and valuation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			srvConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				srvConf.Address = address
			}

			reporter := report.NewBuilder(logger)
			if srvConf.LogoPath != "" {
				reporter = report.NewBuilderWithLogo(logger, srvConf.LogoPath)
			}

			handler := server.NewHandler(server.Options{
				Logger:         logger,
				Market:         &conf.Market,
				Rates:          rates.NewTable(),
				Reporter:       reporter,
				MaxRequestSize: srvConf.RequestSizeBytes(),
				Version:        version,
			})

			logger.Info("starting server",
				zap.String("op", "main.serve"),
				zap.String("address", srvConf.Address),
			)
			if err := http.ListenAndServe(srvConf.Address, handler); err != nil {
				logger.Fatal("server exited",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")

	return cmd
}
