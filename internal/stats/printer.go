package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
)

// DefaultNameColumnWidth is the test-case column width used when a benchmark does not set one.
const DefaultNameColumnWidth = 85

type column struct {
	width int
	label string
}

func columns(nameWidth int) []column {
	return []column{
		{nameWidth, "TestCase"},
		{15, "Mean"},
		{15, "Median"},
		{15, "StdDev"},
		{15, "Min"},
		{15, "Max"},
		{7, "Type"},
		{15, "Label [unit]"},
	}
}

// statusWidth spans the Mean, Median and StdDev columns.
func statusWidth(cols []column) int {
	return cols[1].width + cols[2].width + cols[3].width
}

// PrintHeader writes the column names for the given print type.
func PrintHeader(w io.Writer, printType PrintType, nameWidth int) {
	cols := columns(nameWidth)
	switch printType {
	case PrintDefault, PrintDefaultWithVerbose, PrintNoop:
		var sb strings.Builder
		for _, c := range cols {
			fmt.Fprintf(&sb, "%*s", c.width, c.label)
		}
		fmt.Fprintln(w, sb.String())
	case PrintCsv:
		labels := make([]string, len(cols))
		for i, c := range cols {
			labels[i] = c.label
		}
		fmt.Fprintln(w, strings.Join(labels, ","))
	default:
		errors.Fatalf("unknown print type selected")
	}
}

type metricsStrings struct {
	mean, median, stdDev, min, max string
	typ, label                     string
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func newMetricsStrings(label string, b *Samples, reachedInfinity bool, warmup int) metricsStrings {
	m := ComputeMetrics(b.Values, warmup)
	ms := metricsStrings{
		mean:   formatValue(m.Mean),
		median: formatValue(m.Median),
		stdDev: fmt.Sprintf("%.2f%%", 100*m.StdDev),
		min:    formatValue(m.Min),
		max:    formatValue(m.Max),
		typ:    b.Type.String(),
		label:  b.Unit.String(),
	}
	if reachedInfinity {
		ms.mean = "inf"
		ms.stdDev = "inf"
	}
	if label != "" {
		ms.label = label + " " + ms.label
	}
	return ms
}

// Print renders the collected samples of a finished run.
func (s *Statistics) Print(name string) {
	switch s.opts.PrintType {
	case PrintDefault:
		s.printDefault(name)
	case PrintDefaultWithVerbose:
		s.printDefault(name)
		s.printVerbose()
	case PrintNoop:
		s.printNoop(name)
	case PrintCsv:
		s.printCsv(name)
	default:
		errors.Fatalf("unknown print type selected")
	}
}

func (s *Statistics) printDefault(name string) {
	cols := columns(s.opts.NameColumnWidth)
	first := true
	for _, label := range s.Labels() {
		ms := newMetricsStrings(label, s.samples[label], s.reachedInfinity, s.opts.Warmup)
		rowName := ""
		if first {
			rowName = name
		}
		fmt.Fprintf(s.out, "%*s%*s%*s%*s%*s%*s%*s %*s\n",
			cols[0].width, rowName,
			cols[1].width, ms.mean,
			cols[2].width, ms.median,
			cols[3].width, ms.stdDev,
			cols[4].width, ms.min,
			cols[5].width, ms.max,
			cols[6].width, ms.typ,
			cols[7].width-1, ms.label)
		first = false
	}
}

func (s *Statistics) printVerbose() {
	for _, label := range s.Labels() {
		var sb strings.Builder
		sb.WriteString("individual ")
		if label != "" {
			sb.WriteString(label)
			sb.WriteByte(' ')
		}
		sb.WriteString("results: [ ")
		for _, v := range s.samples[label].Values {
			fmt.Fprintf(&sb, "%g ", v)
		}
		sb.WriteString("]")
		fmt.Fprintln(s.out, sb.String())
	}
	fmt.Fprintln(s.out)
}

func (s *Statistics) printNoop(name string) {
	cols := columns(s.opts.NameColumnWidth)
	padding := 0
	for _, c := range cols[1 : len(cols)-1] {
		padding += c.width
	}
	fmt.Fprintf(s.out, "%*s%*s%*s\n",
		cols[0].width, name,
		padding, s.noop.Type.String(),
		cols[len(cols)-1].width, s.noop.Unit.String())
}

func (s *Statistics) printCsv(name string) {
	if len(s.samples) == 0 {
		errors.Fatalf("test did not generate any values")
	}
	for _, label := range s.Labels() {
		ms := newMetricsStrings(label, s.samples[label], s.reachedInfinity, s.opts.Warmup)
		fmt.Fprintln(s.out, strings.Join([]string{name, ms.mean, ms.median, ms.stdDev, ms.min, ms.max, ms.typ, ms.label}, ","))
	}
}

// PrintStatus writes a one-line message in place of the numeric columns.
func (s *Statistics) PrintStatus(name, message string) {
	s.printStatus(name, message, '\n')
}

func (s *Statistics) printStatus(name, message string, ending byte) {
	cols := columns(s.opts.NameColumnWidth)
	switch s.opts.PrintType {
	case PrintDefault, PrintDefaultWithVerbose, PrintNoop:
		fmt.Fprintf(s.out, "%*s%*s%c", cols[0].width, name, statusWidth(cols), message, ending)
	case PrintCsv:
		fields := make([]string, len(cols))
		fields[0] = name
		for i := 1; i < len(cols); i++ {
			fields[i] = message
		}
		fmt.Fprintf(s.out, "%s%c", strings.Join(fields, ","), ending)
	default:
		errors.Fatalf("unknown print type selected")
	}
}

// PrintBeforeTest writes the name ending with a carriage return so the next line overwrites it.
func (s *Statistics) PrintBeforeTest(name string) {
	s.printStatus(name, "", '\r')
}

// ClearLineAfterTest blanks the caption written by PrintBeforeTest.
func (s *Statistics) ClearLineAfterTest() {
	fmt.Fprintf(s.out, "%s\r", strings.Repeat(" ", s.opts.NameColumnWidth))
}
