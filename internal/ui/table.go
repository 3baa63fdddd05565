package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders a boxed table with a header row to the writer.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// PrintBarChart renders a horizontal bar chart with the given header
// line above it.
func PrintBarChart(header string, bars pterm.Bars, writer io.Writer) {
	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter("▇").
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render chart: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, Blue(header)+chart)
}
