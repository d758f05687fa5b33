package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/api"
	"github.com/bnbowman/gffio/pkg/index"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve features from a built index over HTTP",
	Long: `Start the read-only REST API over a built feature index.

Endpoints:
  GET /api/v1/features/{id}    one feature as JSON
  GET /api/v1/features?prefix= feature IDs by prefix
  GET /api/v1/health           health check
  GET /metrics                 Prometheus metrics

Example:
  gffio serve --index-dir=./idx --port=8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := indexDir(cmd)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}

		ix, err := index.Open(index.Config{Dir: dir})
		if err != nil {
			return err
		}
		defer ix.Close()

		cmd.Printf("serving on %s:%d\n", cfg.Bind, cfg.Port)
		return api.StartServer(ix, api.ServerConfig{Port: cfg.Port, Bind: cfg.Bind})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("index-dir", "", "Index directory (defaults to the configured one)")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().String("bind", "", "Address to bind")
}
