package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"clientctl/internal/clients"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// maxCellWidth is where free-text cells are cut in table output.
const maxCellWidth = 30

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes client records for one-shot CLI commands
type Printer struct {
	Out    io.Writer
	Format OutputFormat
	Quiet  bool
}

// NewPrinter creates a printer writing to stdout
func NewPrinter(format OutputFormat, quiet bool) *Printer {
	return &Printer{Out: os.Stdout, Format: format, Quiet: quiet}
}

// PrintClients formats the records according to the configured format
func (p *Printer) PrintClients(list []clients.Client) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.printJSON(list)
	case OutputFormatYAML:
		return p.printYAML(list)
	case OutputFormatTable, "":
		return p.printTable(list)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

func (p *Printer) printJSON(list []clients.Client) error {
	if list == nil {
		list = []clients.Client{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.Out, string(data))
	return err
}

// printYAML goes through JSON so the keys match the wire names
func (p *Printer) printYAML(list []clients.Client) error {
	if list == nil {
		list = []clients.Client{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	_, err = fmt.Fprint(p.Out, string(yamlData))
	return err
}

func (p *Printer) printTable(list []clients.Client) error {
	if len(list) == 0 {
		if !p.Quiet {
			fmt.Fprintln(p.Out, text.FgYellow.Sprint("No clients found"))
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)

	headers := table.Row{}
	for _, col := range []string{"id", "name", "email", "job", "rate", "status"} {
		headers = append(headers, text.FgHiCyan.Sprint(strings.ToUpper(col)))
	}
	t.AppendHeader(headers)

	for _, c := range list {
		t.AppendRow(table.Row{
			c.ID,
			formatText(c.Name),
			formatText(c.Email),
			formatText(c.Job),
			formatText(c.Rate.String()),
			formatStatus(c.Status()),
		})
	}

	t.Render()

	if !p.Quiet {
		fmt.Fprintf(p.Out, "\n%s %s %s\n",
			text.FgHiBlue.Sprint("Total:"),
			text.FgHiWhite.Sprint(len(list)),
			pluralize("client", len(list)))
	}
	return nil
}

func formatText(s string) string {
	if s == "" {
		return text.FgHiBlack.Sprint("-")
	}
	if len([]rune(s)) > maxCellWidth {
		return string([]rune(s)[:maxCellWidth-3]) + "..."
	}
	return s
}

func formatStatus(s clients.Status) string {
	if s.Active() {
		return text.FgGreen.Sprint(string(s))
	}
	return text.FgRed.Sprint(string(s))
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
