// Package procs produces process-table snapshots for the inventory joiner.
package procs

import (
	"context"
	"fmt"

	gops "github.com/shirou/gopsutil/v4/process"

	"procwin/internal/inventory"
)

// SystemLister enumerates the live process table. One snapshot per call;
// nothing is cached between calls.
type SystemLister struct{}

// Snapshot lists all processes visible to the current user in OS-native
// order. Per-process attribute failures (typically insufficient privilege)
// degrade that single record to empty/zero values instead of aborting the
// pass.
func (SystemLister) Snapshot(ctx context.Context) ([]inventory.Process, error) {
	listed, err := gops.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]inventory.Process, 0, len(listed))
	for _, p := range listed {
		rec := inventory.Process{PID: p.Pid}
		if name, err := p.NameWithContext(ctx); err == nil {
			rec.Name = name
		}
		if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
			rec.Cmdline = cmdline
		}
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			rec.Memory = mem.RSS
		}
		out = append(out, rec)
	}
	return out, nil
}
