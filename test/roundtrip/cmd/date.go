package cmd

import (
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	sfv "github.com/zostay/go-sfv"
)

var dateCmd = &cobra.Command{
	Use:   "date when",
	Short: "Prints a timestamp as a structured field date item",
	Long: `Accepts nearly any human date format, such as "2022-08-04 01:57:13"
or "Aug 4, 2022", and prints the structured field date item for it.
Handy for building test cases without doing epoch arithmetic.`,
	Args: cobra.ExactArgs(1),
	RunE: RunDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func RunDate(cmd *cobra.Command, args []string) error {
	when, err := dateparse.ParseAny(args[0])
	if err != nil {
		return err
	}

	cmd.Println(sfv.SerializeItem(sfv.Item{Value: sfv.DateFromTime(when)}))
	return nil
}
