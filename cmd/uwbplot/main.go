// uwbplot renders the UWB measurement charts.
//
// Subcommands:
//
//	distance  line chart of the first N distance samples with their mean
//	position  scatter of trilateration results with mean crosshairs
//	timing    grouped bar chart of connection setup timings
//
// Without --out each chart opens in a window and the command returns once the
// window is closed.
package main

import (
	"os"

	"github.com/iafilius/uwbmeasure/src/applog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		applog.Errorf("%v", err)
		os.Exit(1)
	}
}
