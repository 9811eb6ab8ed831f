// Package preview prints the first rows of result tables to a terminal.
package preview

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"keymend/pkg/trend"
)

// DefaultRows matches the usual head() preview size
const DefaultRows = 5

// Printer renders titled table previews
type Printer struct {
	out   io.Writer
	rows  int
	quiet bool
}

// NewPrinter creates a printer writing to out. rows <= 0 uses DefaultRows.
func NewPrinter(out io.Writer, rows int, quiet bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Printer{out: out, rows: rows, quiet: quiet}
}

// Print writes a section title followed by the head of table
func (p *Printer) Print(title string, table trend.Table) error {
	if p.quiet {
		return nil
	}

	color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n===== %s =====\n", title)

	head := table.Head(p.rows)
	if len(head.Records) == 0 {
		_, err := fmt.Fprintln(p.out, "(no rows)")
		return err
	}

	tbl := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
	tbl.Header(head.Header)
	if err := tbl.Bulk(head.Records); err != nil {
		return fmt.Errorf("failed to render %s preview: %w", title, err)
	}
	return tbl.Render()
}

// Done prints a success line
func (p *Printer) Done(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(p.out, "\n"+format+"\n", args...)
}
