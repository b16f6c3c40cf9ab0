package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/radiofrance/robotkw/internal/logger"
	"github.com/radiofrance/robotkw/pkg/keyword"
	"github.com/radiofrance/robotkw/pkg/report"
	"github.com/radiofrance/robotkw/pkg/robotkw"
)

const formatEnvVar = "ROBOTKW_FORMAT"

var errKeywordsFailed = errors.New("some keywords failed, see the report for more details")

type convertOpts struct {
	// Root options
	Format string `mapstructure:"format"`

	// Convert specific options
	Output        string `mapstructure:"output"`
	FailOnFailure bool   `mapstructure:"fail_on_failure"`
}

func convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert SOURCE",
		Short: "Convert the keyword tree of a report into a JSON or YAML document",
		Long: `robotkw convert reads the report at SOURCE, whose root element is a "kw" keyword, and
writes the keyword tree as a nested document. Each keyword holds its name, status, start and end
time, and a "keywords" list when it contains other keywords.

When --output is not set, the document is printed on the standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindPFlagsSnakeCase(cmd.Flags())

			opts := convertOpts{}
			hydrateOptsFromViper(&opts)

			format, err := resolveFormat(cmd, opts)
			if err != nil {
				return err
			}

			return doConvert(cmd, args[0], format, opts)
		},
	}

	cmd.Flags().StringP("output", "o", "",
		"Path of the generated document. The document is printed on stdout when empty.")
	cmd.Flags().Bool("fail-on-failure", false,
		"Exit with an error when at least one keyword has the FAIL status.")

	return cmd
}

// resolveFormat picks the output format. A format set by flag, environment or config file wins,
// otherwise the extension of --output decides.
func resolveFormat(cmd *cobra.Command, opts convertOpts) (report.Format, error) {
	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return "", err
	}

	if opts.Output == "" || cmd.Flags().Changed("format") || viper.InConfig("format") {
		return format, nil
	}
	if val, ok := os.LookupEnv(formatEnvVar); ok && val != "" {
		return format, nil
	}

	return report.FormatFromPath(opts.Output), nil
}

func doConvert(cmd *cobra.Command, source string, format report.Format, opts convertOpts) error {
	var (
		record keyword.Record
		err    error
	)

	if opts.Output == "" {
		record, err = robotkw.Parse(source)
		if err != nil {
			return err
		}
		if err := report.Encode(cmd.OutOrStdout(), record, format); err != nil {
			return err
		}
	} else {
		record, err = robotkw.ExtractAndSave(source, opts.Output, format)
		if err != nil {
			return err
		}
		logger.Infof("Keyword report written to %s", opts.Output)
	}

	robotkw.LogSummary(record)

	if opts.FailOnFailure && record.Summarize().Failed() {
		return errKeywordsFailed
	}

	return nil
}
