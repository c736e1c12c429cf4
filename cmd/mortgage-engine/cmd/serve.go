package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homelend/mortgage-engine/internal/server"
)

var (
	serveAddress     string
	serveConfigFile  string
	serveMaxBodySize string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	Long: `serve starts an HTTP server exposing the purchase and refinance
calculators as a JSON API. The rate/fee configuration file is watched while
the server runs; table edits take effect on the next request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if serveAddress != "" {
			cfg.Address = serveAddress
		}

		maxBody := cfg.BodySizeBytes()
		if serveMaxBodySize != "" {
			maxBody, err = server.ParseSize(serveMaxBodySize)
			if err != nil {
				return err
			}
		}

		handler := server.NewHandler(logger, store, maxBody, rootCmd.Version)
		srv := &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("serving calculation API",
			zap.String("op", "cmd.serve"),
			zap.String("address", cfg.Address),
		)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address (overrides the server config file)")
	serveCmd.Flags().StringVar(&serveConfigFile, "server-config", "", "path to an optional server configuration file")
	serveCmd.Flags().StringVar(&serveMaxBodySize, "max-body-size", "", "request body limit, e.g. 256K or 1M")
}
