package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/gff"
	"github.com/bnbowman/gffio/pkg/index"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <feature-id>",
	Short: "Look up a feature by ID",
	Long: `Look up a feature in a built index and print its GFF3 line.

Example:
  gffio get --index-dir=./idx PRO_0000148105`,
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

		rec, err := ix.Get(args[0])
		if err != nil {
			return err
		}

		w := gff.NewWriter(cmd.OutOrStdout())
		if err := w.Write(rec); err != nil {
			return err
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().String("index-dir", "", "Index directory (defaults to the configured one)")
}
