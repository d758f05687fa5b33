package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnbowman/gffio/pkg/gff"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <file.gff3>",
	Short: "Count features by type",
	Long: `Count the features in a GFF3 file grouped by feature type.

Example:
  gffio stats annotation.gff3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := gff.Open(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		counts, bad, err := typeCounts(r)
		if err != nil {
			return err
		}

		types := make([]string, 0, len(counts))
		total := 0
		for ft, n := range counts {
			types = append(types, ft)
			total += n
		}
		sort.Strings(types)

		for _, ft := range types {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", ft, counts[ft])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "total\t%d\n", total)
		if bad > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d malformed lines skipped\n", bad)
		}
		return nil
	},
}

// typeCounts tallies records by feature type. Malformed lines are
// counted, not fatal.
func typeCounts(r *gff.Reader) (map[string]int, int, error) {
	counts := make(map[string]int)
	bad := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return counts, bad, nil
		}
		var decodeErr *gff.DecodeError
		if errors.As(err, &decodeErr) {
			bad++
			continue
		}
		if err != nil {
			return nil, bad, err
		}
		counts[rec.FeatureType()]++
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
