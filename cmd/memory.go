package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/os-sim/os-sim/sim"
)

var memoryTotal int64 // Managed address-space size (KB)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Run the first-fit allocator demo scenario",
	Run: func(cmd *cobra.Command, args []string) {
		mm, err := sim.NewMemoryManager(memoryTotal)
		if err != nil {
			logrus.Fatalf("Allocator setup failed: %v", err)
		}

		// Literal demo scenario: three allocations, one free, then a
		// request that fails on fragmentation despite enough total space.
		for _, req := range []struct {
			pid  int
			size int64
		}{{1, 20}, {2, 30}, {3, 15}} {
			addr, err := mm.Allocate(req.pid, req.size)
			if err != nil {
				logrus.Fatalf("Allocate P%d failed: %v", req.pid, err)
			}
			fmt.Printf("Allocated %dKB to P%d at address %d\n", req.size, req.pid, addr)
		}
		renderMemory(mm)

		if err := mm.Deallocate(2); err != nil {
			logrus.Fatalf("Deallocate P2 failed: %v", err)
		}
		fmt.Println("Deallocated memory for P2")

		if _, err := mm.Allocate(4, 35); errors.Is(err, sim.ErrInsufficientMemory) {
			fmt.Println("Allocate 35KB for P4: insufficient memory (external fragmentation)")
		}
		renderMemory(mm)
	},
}

func renderMemory(mm *sim.MemoryManager) {
	fmt.Println("--- Memory Layout ---")
	for _, ext := range mm.Snapshot() {
		fmt.Println(ext)
	}
}

func init() {
	memoryCmd.Flags().Int64Var(&memoryTotal, "total", 100, "Total managed memory (KB)")

	rootCmd.AddCommand(memoryCmd)
}
