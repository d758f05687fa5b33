package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/gff"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view <file.gff3>",
	Short: "Decode a GFF3 file and reprint it",
	Long: `Decode a GFF3 file (plain or .gz) and reprint it to stdout.

Attribute keys are emitted in sorted order, so the output is a
normalized form of the input.

Example:
  gffio view annotation.gff3.gz > normalized.gff3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipBad, _ := cmd.Flags().GetBool("skip-bad")

		r, err := gff.Open(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		w := gff.NewWriter(cmd.OutOrStdout())
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			var decodeErr *gff.DecodeError
			if errors.As(err, &decodeErr) {
				if skipBad {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping: %v\n", decodeErr)
					continue
				}
				return err
			}
			if err != nil {
				return err
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().Bool("skip-bad", false, "Skip malformed lines instead of stopping")
}
