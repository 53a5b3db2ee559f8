package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/os-sim/os-sim/sim"
)

var (
	diskCylinders int    // Total cylinder count
	diskHead      int    // Initial head position
	diskPolicy    string // Disk policy name
	diskDirection string // SCAN sweep direction
)

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Run the disk-head scheduling demo batch under a seek policy",
	Run: func(cmd *cobra.Command, args []string) {
		requests := []int{98, 183, 37, 122, 14, 124, 65, 67}

		sched, err := sim.NewDiskScheduler(diskCylinders)
		if err != nil {
			logrus.Fatalf("Disk scheduler setup failed: %v", err)
		}

		var result *sim.SeekResult
		switch diskPolicy {
		case "fcfs":
			result, err = sched.FCFS(requests, diskHead)
		case "scan":
			result, err = sched.SCAN(requests, diskHead, sim.SweepDirection(diskDirection))
		default:
			logrus.Fatalf("Unknown disk policy: %s", diskPolicy)
		}
		if err != nil {
			logrus.Fatalf("Disk scheduling failed: %v", err)
		}

		fmt.Printf("=== %s Disk Scheduling ===\n", result.Policy)
		fmt.Printf("Initial head position: %d\n", diskHead)
		fmt.Printf("Visit order: %v\n", result.Sequence)
		fmt.Printf("Total seek: %d\n", result.TotalSeek)
	},
}

func init() {
	diskCmd.Flags().IntVar(&diskCylinders, "cylinders", 200, "Total cylinder count")
	diskCmd.Flags().IntVar(&diskHead, "head", 53, "Initial head position")
	diskCmd.Flags().StringVar(&diskPolicy, "policy", "fcfs", "Disk policy (fcfs, scan)")
	diskCmd.Flags().StringVar(&diskDirection, "direction", "up", "SCAN sweep direction (up, down)")

	rootCmd.AddCommand(diskCmd)
}
