package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/os-sim/os-sim/sim"
)

var (
	schedulePolicy  string // Dispatch policy name
	scheduleQuantum int64  // Round-robin quantum (ticks)
)

// demoProcesses is the literal workload every schedule invocation runs.
// The demo layer carries no logic of its own; swap in a scenario file via
// the scenario subcommand for custom workloads.
func demoProcesses() []*sim.Process {
	return []*sim.Process{
		sim.NewProcess(1, "P1", 1, 5, 0),
		sim.NewProcess(2, "P2", 2, 3, 1),
		sim.NewProcess(3, "P3", 1, 8, 2),
	}
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the CPU scheduling demo workload under a dispatch policy",
	Run: func(cmd *cobra.Command, args []string) {
		if !sim.ValidDispatchPolicies[schedulePolicy] {
			logrus.Fatalf("Unknown dispatch policy: %s", schedulePolicy)
		}

		sched := sim.NewScheduler()
		for _, p := range demoProcesses() {
			if err := sched.Admit(p); err != nil {
				logrus.Fatalf("Admit failed: %v", err)
			}
		}

		var result *sim.ScheduleResult
		switch schedulePolicy {
		case sim.PolicyFCFS:
			result = sched.RunFCFS()
		case sim.PolicySJF:
			result = sched.RunSJF()
		case sim.PolicyRoundRobin:
			res, err := sched.RunRoundRobin(scheduleQuantum)
			if err != nil {
				logrus.Fatalf("Round-robin failed: %v", err)
			}
			result = res
		}

		stats, err := sched.Statistics()
		if err != nil {
			logrus.Fatalf("Statistics failed: %v", err)
		}
		renderSchedule(result, stats)
	},
}

func renderSchedule(result *sim.ScheduleResult, stats *sim.ScheduleStats) {
	fmt.Printf("=== %s Scheduling ===\n", result.Policy)
	for _, p := range stats.Processes {
		fmt.Printf("%s: Waiting=%d, Turnaround=%d\n", p.Name, p.WaitingTime, p.TurnaroundTime)
	}
	fmt.Printf("Average Waiting Time    : %.2f\n", stats.AvgWaiting)
	fmt.Printf("Average Turnaround Time : %.2f\n", stats.AvgTurnaround)
	fmt.Printf("Final Clock             : %d ticks\n", result.Clock)
}

func init() {
	scheduleCmd.Flags().StringVar(&schedulePolicy, "policy", sim.PolicyFCFS, "Dispatch policy (fcfs, sjf, round-robin)")
	scheduleCmd.Flags().Int64Var(&scheduleQuantum, "quantum", 2, "Round-robin quantum in ticks")

	rootCmd.AddCommand(scheduleCmd)
}
