package output

import (
	"time"

	"github.com/ccollicutt/outstat/pkg/extract"
)

func float(v float64) *float64 {
	return &v
}

func createTestResult(reservoirs ...string) *extract.Result {
	date := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	return &extract.Result{
		Reservoirs: reservoirs,
		Rows: []*extract.Row{
			{
				Reservoir: "",
				Well:      "P1",
				Time:      30,
				Date:      date,
				Text: map[string]string{
					extract.ColStatus:          "ON",
					extract.ColStatusReason:    "Max WCUT, lim",
					extract.ColFirstCompletion: "1 1 1",
				},
				Numbers: map[string]*float64{
					extract.ColQOP:  float(1250.5),
					extract.ColWCUT: float(0.0099),
				},
			},
			{
				Well:    "P2",
				Time:    30,
				Text:    map[string]string{extract.ColStatus: "SHUTIN"},
				Numbers: map[string]*float64{},
			},
		},
	}
}
