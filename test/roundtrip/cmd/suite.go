package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var suiteCmd = &cobra.Command{
	Use:   "suite file.toml ...",
	Short: "Runs TOML corpora of round-trip cases",
	Long: `Each corpus file holds an array of cases:

    [[case]]
    name = "fractional"
    type = "item"
    input = "4.5"

    [[case]]
    name = "list normalizes whitespace"
    type = "list"
    input = "a ,b"
    canonical = "a, b"

    [[case]]
    name = "trailing comma"
    type = "list"
    input = "a,"
    fail = true

A case passes when parsing and reserializing input yields canonical
(default: the input itself), or when parsing fails and fail is true.`,
	Args: cobra.MinimumNArgs(1),
	RunE: RunSuite,
}

var verbose bool

func init() {
	suiteCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log passing cases too")
	rootCmd.AddCommand(suiteCmd)
}

type suiteCase struct {
	Name      string `toml:"name"`
	Type      string `toml:"type"`
	Input     string `toml:"input"`
	Canonical string `toml:"canonical"`
	Fail      bool   `toml:"fail"`
}

type suiteFile struct {
	Case []suiteCase `toml:"case"`
}

func RunSuite(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	failed, passed := 0, 0
	for _, path := range args {
		var sf suiteFile
		if _, err := toml.DecodeFile(path, &sf); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		for _, c := range sf.Case {
			clog := log.With().Str("file", path).Str("case", c.Name).Logger()

			canon, err := canonicalize(c.Type, c.Input)
			want := c.Canonical
			if want == "" {
				want = c.Input
			}

			switch {
			case c.Fail && err == nil:
				clog.Error().Str("got", canon).Msg("expected a parse failure")
				failed++
			case c.Fail:
				clog.Debug().Msg("failed as expected")
				passed++
			case err != nil:
				clog.Error().Err(err).Msg("parse failed")
				failed++
			case canon != want:
				clog.Error().Str("want", want).Str("got", canon).Msg("canonical form mismatch")
				failed++
			default:
				clog.Debug().Msg("round-trip clean")
				passed++
			}
		}
	}

	log.Info().Int("passed", passed).Int("failed", failed).Msg("suite complete")
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, passed+failed)
	}
	return nil
}
