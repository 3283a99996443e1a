// Command estimate is the resource-estimator CLI: compute a single
// feasible physical layout for an algorithm, sweep its full cost/qubit
// frontier, or serve the same estimator over HTTP.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
