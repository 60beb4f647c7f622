package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pratik-mahalle/recommendations/pkg/client"
)

// Table renders data as a formatted table.
type Table struct {
	headers []string
	rows    [][]string
	writer  io.Writer
}

// NewTable creates a new table with the given headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		headers: headers,
		writer:  w,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render writes the table.
func (t *Table) Render() {
	w := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.headers, "\t"))

	sep := make([]string, len(t.headers))
	for i, h := range t.headers {
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(sep, "\t"))

	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// printOutput prints data in the requested structured format. Table output
// is rendered by each command.
func printOutput(w io.Writer, data interface{}) error {
	switch getOutputFormat() {
	case "yaml":
		return printYAML(w, data)
	default:
		return printJSON(w, data)
	}
}

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printYAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

func printRecommendations(w io.Writer, recs []client.Recommendation) error {
	if getOutputFormat() != "table" {
		return printOutput(w, recs)
	}

	t := NewTable(w, "ID", "PID", "RECOMMENDED", "TYPE", "LIKED")
	for _, r := range recs {
		t.AddRow(
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.PID, 10),
			strconv.FormatInt(r.RecommendedPID, 10),
			r.Type,
			formatLiked(r.Liked),
		)
	}
	t.Render()
	return nil
}

func printRecommendation(w io.Writer, rec *client.Recommendation) error {
	if getOutputFormat() != "table" {
		return printOutput(w, rec)
	}

	fmt.Fprintf(w, "ID:              %d\n", rec.ID)
	fmt.Fprintf(w, "Product:         %d\n", rec.PID)
	fmt.Fprintf(w, "Recommended:     %d\n", rec.RecommendedPID)
	fmt.Fprintf(w, "Type:            %s\n", rec.Type)
	fmt.Fprintf(w, "Liked:           %s\n", formatLiked(rec.Liked))
	return nil
}

// formatLiked returns the liked flag with a visual indicator.
func formatLiked(liked bool) string {
	if liked {
		return "[+] yes"
	}
	return "no"
}
