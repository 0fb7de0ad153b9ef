// Package procstats reports resource usage of a session's workload.
//
// A screen session's pid belongs to the screen wrapper, not the server
// it hosts; the workload is the wrapper's first child. This package
// samples that child's CPU over a fixed window and reads its resident
// memory.
package procstats

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// SampleInterval is the CPU sampling window used for stats queries.
const SampleInterval = 2 * time.Second

// Provider samples resource usage for the workload under a session pid.
type Provider interface {
	// SampleChild finds the first child of pid, samples its CPU usage
	// over interval, and returns the CPU percentage together with the
	// child's resident set size in bytes.
	SampleChild(pid int32, interval time.Duration) (cpuPercent float64, rssBytes uint64, err error)
}

// PSProvider is the gopsutil-backed Provider.
type PSProvider struct{}

// NewProvider returns a Provider reading live process information.
func NewProvider() *PSProvider {
	return &PSProvider{}
}

// SampleChild implements Provider.
func (p *PSProvider) SampleChild(pid int32, interval time.Duration) (float64, uint64, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	children, err := proc.Children()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list children of %d: %w", pid, err)
	}
	if len(children) == 0 {
		return 0, 0, fmt.Errorf("process %d has no child process", pid)
	}
	child := children[0]

	cpu, err := child.Percent(interval)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sample cpu of %d: %w", child.Pid, err)
	}

	mem, err := child.MemoryInfo()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read memory of %d: %w", child.Pid, err)
	}

	return cpu, mem.RSS, nil
}
