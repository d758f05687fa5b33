package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/index"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <file.gff3>",
	Short: "Build a feature index from a GFF3 file",
	Long: `Build a persistent index mapping feature ID attributes to their
records. Features without an ID and malformed lines are skipped.

Example:
  gffio index --index-dir=./idx annotation.gff3.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := indexDir(cmd)
		if err != nil {
			return err
		}

		ix, err := index.Open(index.Config{Dir: dir})
		if err != nil {
			return err
		}
		defer ix.Close()

		stats, err := ix.Build(args[0])
		if err != nil {
			return err
		}

		cmd.Printf("indexed %d features (%d without ID, %d malformed lines skipped)\n",
			stats.Indexed, stats.NoID, stats.BadLines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().String("index-dir", "", "Index directory (defaults to the configured one)")
}
