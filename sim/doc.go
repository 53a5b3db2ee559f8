// Package sim provides deterministic simulations of core operating-system
// resource-management algorithms. Nothing real runs: no processes, no
// memory, no disks — only their bookkeeping, over a logical tick clock.
//
// # Reading Guide
//
// Start with these files to understand the engines:
//   - process.go: Process lifecycle (NEW → READY → RUNNING → {READY, TERMINATED})
//   - scheduler.go: the CPU dispatch policies (FCFS, SJF, round-robin) and the logical clock
//   - memory.go: first-fit contiguous allocation with split and coalesce
//   - deadlock.go: Banker's safety algorithm as a detection tool
//   - disk.go: FCFS and SCAN head scheduling
//
// # Architecture
//
// Each engine is invoked independently with a fully-formed input and
// returns a fully-formed value-object result; there is no cross-engine
// data flow. Engines are single-threaded, synchronous, and restartable;
// callers needing concurrent access must serialize per engine instance.
//
// scenario.go binds the engines to YAML scenario files for the CLI; the
// sim/trace sub-package holds the optional per-step observer records.
// paging.go, semaphore.go, and vfs.go model the simpler collaborators
// (page table, counting semaphore, directory tree) the engines sit beside.
package sim
