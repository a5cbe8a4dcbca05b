package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uakit/internal/api"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Output formats of the parse command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// formatVar is a pflag.Value restricted to the known output formats.
type formatVar struct {
	format string
}

func (v *formatVar) Set(in string) error {
	switch f := strings.ToLower(strings.TrimSpace(in)); f {
	case FormatText, FormatJSON, FormatYAML:
		v.format = f
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of %s, %s, %s", in, FormatText, FormatJSON, FormatYAML)
	}
}

func (v *formatVar) Type() string { return "string" }

func (v *formatVar) String() string { return v.format }

// record is the YAML shape of a parse result.
type record struct {
	Raw        string                `yaml:"raw"`
	Display    string                `yaml:"display"`
	DeviceType string                `yaml:"device_type"`
	BotName    string                `yaml:"bot_name,omitempty"`
	Browser    useragent.BrowserInfo `yaml:"browser"`
	OS         useragent.OSInfo      `yaml:"os"`
	Device     useragent.DeviceInfo  `yaml:"device"`
}

func newRecord(r api.ParseResult) record {
	return record{
		Raw:        r.Raw,
		Display:    r.Display,
		DeviceType: r.DeviceType,
		BotName:    r.BotName,
		Browser:    r.Browser,
		OS:         r.OS,
		Device:     r.Device,
	}
}

func writeResults(w io.Writer, format string, results []api.ParseResult) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case FormatYAML:
		records := make([]record, len(results))
		for i, r := range results {
			records[i] = newRecord(r)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()

	default:
		title := cases.Title(language.English)
		for _, r := range results {
			label := r.Display
			if label == "" {
				label = useragent.DisplayUnknown
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", label, title.String(r.DeviceType)); err != nil {
				return err
			}
		}
		return nil
	}
}
