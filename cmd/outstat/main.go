// outstat - Nexus well status extractor
//
// outstat scans a Nexus simulator output report and writes the well status
// summaries it contains to a spreadsheet or a delimited text file.
package main

import (
	"os"

	"github.com/ccollicutt/outstat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
