package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gffio",
	Short: "gffio - GFF3 annotation toolkit",
	Long: `gffio reads, writes, indexes and serves GFF3 genomic feature
annotations. Plain and gzip-compressed files are supported.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a gffio config file")
}

// loadConfig resolves the effective configuration: the --config flag if
// given, otherwise the default config file if one exists, otherwise
// built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadConfig(path)
	}
	if path := config.GetDefaultConfigPath(); config.ConfigExists(path) {
		return config.LoadConfig(path)
	}
	return config.DefaultConfig(), nil
}

// indexDir returns the --index-dir flag, falling back to the configured
// directory.
func indexDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("index-dir")
	if dir != "" {
		return dir, nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	return cfg.IndexDir, nil
}
