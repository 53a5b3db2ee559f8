package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/os-sim/os-sim/sim"
	"github.com/os-sim/os-sim/sim/trace"
)

var (
	scenarioPath      string // Path to the YAML scenario file
	scenarioWithTrace bool   // Attach a trace observer and print record counts
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Replay a YAML scenario file across the engines",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		var tr *trace.SimulationTrace
		if scenarioWithTrace {
			tr = trace.NewSimulationTrace()
		}

		result, err := sc.Run(tr)
		if err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}

		if result.Schedule != nil {
			renderSchedule(result.Schedule, result.ScheduleStats)
		}
		if result.Memory != nil {
			fmt.Println("--- Memory Layout ---")
			for _, ext := range result.Memory {
				fmt.Println(ext)
			}
			for i, opErr := range result.MemoryErrs {
				if opErr != nil {
					fmt.Printf("Memory op %d: %v\n", i, opErr)
				}
			}
		}
		if result.Safety != nil {
			if result.Safety.Safe {
				fmt.Printf("SAFE, sequence %v\n", result.Safety.SafeSequence)
			} else {
				fmt.Printf("DEADLOCK, processes %v\n", result.Safety.Deadlocked)
			}
		}
		if result.Disk != nil {
			fmt.Printf("Disk %s: order %v, total seek %d\n",
				result.Disk.Policy, result.Disk.Sequence, result.Disk.TotalSeek)
		}
		if tr != nil {
			fmt.Printf("Trace %s: %d dispatches, %d extent ops, %d seeks, %d verdicts\n",
				tr.RunID, len(tr.Dispatches), len(tr.Extents), len(tr.Seeks), len(tr.Safety))
		}
	},
}

func init() {
	scenarioCmd.Flags().StringVar(&scenarioPath, "file", "", "Path to YAML scenario file")
	scenarioCmd.Flags().BoolVar(&scenarioWithTrace, "trace", false, "Record per-step trace and print a summary")
	_ = scenarioCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scenarioCmd)
}
