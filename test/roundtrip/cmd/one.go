package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	sfv "github.com/zostay/go-sfv"
)

var oneCmd = &cobra.Command{
	Use:   "one type value",
	Short: "Shows the diff between a field value and its canonical form",
	Long: `Parses value as the given field type (item, list, or dictionary),
serializes it back, and shows a diff against the original text. A
canonical input diffs clean.`,
	Args: cobra.ExactArgs(2),
	RunE: RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

// canonicalize parses value as the named field type and serializes it
// back into canonical form.
func canonicalize(fieldType, value string) (string, error) {
	switch fieldType {
	case "item":
		item, err := sfv.ParseItem(value)
		if err != nil {
			return "", err
		}
		return sfv.SerializeItem(item), nil
	case "list":
		list, err := sfv.ParseList(value)
		if err != nil {
			return "", err
		}
		return sfv.SerializeList(list), nil
	case "dictionary", "dict":
		dict, err := sfv.ParseDictionary(value)
		if err != nil {
			return "", err
		}
		return sfv.SerializeDictionary(dict), nil
	}
	return "", fmt.Errorf("unknown field type %q (want item, list, or dictionary)", fieldType)
}

func RunOne(cmd *cobra.Command, args []string) error {
	canon, err := canonicalize(args[0], args[1])
	if err != nil {
		return err
	}

	if canon == args[1] {
		cmd.Println("round-trip clean")
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(args[1], canon, false)
	cmd.Println(dmp.DiffPrettyText(diffs))
	return nil
}
