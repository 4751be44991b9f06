package histdb

import (
	"fmt"

	"github.com/repogem/repogem/schema"
)

// PrintHistoryStatus displays history store information in a human-readable format.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	fmt.Printf("Total Score Rows: %d\n", status.TotalRows)
	if status.LastRunUTC != "" {
		fmt.Printf("Last Run (UTC): %s\n", status.LastRunUTC)
	}
}
