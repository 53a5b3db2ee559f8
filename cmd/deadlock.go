package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/os-sim/os-sim/sim"
)

var deadlockCmd = &cobra.Command{
	Use:   "deadlock",
	Short: "Run the Banker's safety detector on the demo matrices",
	Run: func(cmd *cobra.Command, args []string) {
		state := &sim.ResourceState{
			Allocation: []sim.Vector{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}},
			MaxNeed:    []sim.Vector{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}},
			Available:  sim.Vector{3, 3, 2},
		}

		report, err := sim.NewDeadlockDetector().Detect(state)
		if err != nil {
			logrus.Fatalf("Detection failed: %v", err)
		}
		if report.Safe {
			fmt.Println("System is in SAFE state")
			fmt.Printf("Safe sequence: %v\n", report.SafeSequence)
			return
		}
		fmt.Println("System is in DEADLOCK state")
		fmt.Printf("Deadlocked processes: %v\n", report.Deadlocked)
	},
}

func init() {
	rootCmd.AddCommand(deadlockCmd)
}
