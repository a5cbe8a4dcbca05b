package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uakit/internal/api"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// ErrNoInput is returned when neither arguments nor stdin hold a user agent.
var ErrNoInput = errors.New("no user agent given")

// maxLineSize bounds one stdin line.
const maxLineSize = 1 << 20

func newParseCommand() *cobra.Command {
	format := formatVar{format: FormatText}

	cmd := &cobra.Command{
		Use:   "parse [USER_AGENT...]",
		Short: "Parse User-Agent strings",
		Long: `Parse each argument as a User-Agent string. Without arguments, every
non-empty line of standard input is parsed.`,
		Example: `  uakit parse "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0 Safari/537.36"
  cat access.log.ua | uakit parse --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = lines
			}
			if len(inputs) == 0 {
				return ErrNoInput
			}

			parser := useragent.NewParser(useragent.DefaultCacheSize)
			results := make([]api.ParseResult, len(inputs))
			for i, in := range inputs {
				results[i] = api.NewParseResult(parser.Parse(in))
			}
			return writeResults(cmd.OutOrStdout(), format.String(), results)
		},
	}
	cmd.Flags().VarP(&format, "format", "f", "Output format: text, json or yaml")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
