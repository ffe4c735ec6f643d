package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ccollicutt/outstat/pkg/parser"
)

const (
	cumHeader  = " Name        Status      Reason      Connection  Number      CELL IJK    Oil         Gas         Water       Oil Inj     Gas Inj     Wat Inj     Days On     Days Off    Shut In     WPAV"
	rateHeader = " Name        Number      CELL IJK    QOP         QGP         QWP         QOI         QGI         QWI         GOR         OGR         WCUT        WGR         QGLG        BHP         PI          THP         SAL"
)

// fixedRow lays values out in 12-character columns matching separator.
func fixedRow(values ...string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("%-11s", v))
	}
	return b.String()
}

// separator returns a dashed underline for n 12-character columns.
func separator(n int) string {
	return strings.Repeat(" "+strings.Repeat("-", 11), n)
}

func usDate(date string, step string) string {
	return "   MO/DAY/YR:  " + date + "   " + step
}

func euDate(date string, step string) string {
	return "   DAY/MO/YR:  " + date + "   " + step
}

func cumRow(well, status, reason, connection, completion, wpav string) string {
	return fixedRow(well, status, reason, connection, "1", completion,
		"100.0", "200.0", "300.0", "0.0", "0.0", "0.0", "30.0", "0.0", "0", wpav)
}

func rateRow(well, qop, qgp, qwp, wcut, bhp string) string {
	return fixedRow(well, "1", "1 1 1", qop, qgp, qwp, "0.0", "0.0", "0.0",
		"1.5", "0.0", wcut, "0.0", "0.0", bhp, "2.0", "150.0", "0.0")
}

func cumSection(dateLine string, body ...string) []string {
	lines := []string{
		"   Well Cumulative Summary",
		"   =======================",
		dateLine,
		"",
		cumHeader,
		separator(16),
	}
	return append(lines, body...)
}

func rateSection(dateLine string, body ...string) []string {
	lines := []string{
		"   Active Well Rate Summary",
		"   ========================",
		dateLine,
		"",
		rateHeader,
		separator(18),
	}
	return append(lines, body...)
}

func reservoirSummary(names ...string) []string {
	lines := []string{
		"   Reservoir Summary",
		"   =================",
		"   Name      Number   Wells",
		"   ----      ------   -----",
	}
	for i, n := range names {
		lines = append(lines, fmt.Sprintf("   %-8s  %d        %d", n, i+1, 2))
	}
	return append(lines, "")
}

func total(name string) string {
	return "   Total " + name + "      1000.0      2000.0"
}

func report(parts ...[]string) string {
	var lines []string
	lines = append(lines, "   NEXUS simulation report", "")
	for _, p := range parts {
		lines = append(lines, p...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func parse(t *testing.T, content string, opts ...Option) *Table {
	t.Helper()
	src := parser.NewReaderSource(strings.NewReader(content), "test.out")
	table, err := New(opts...).Parse(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return table
}
