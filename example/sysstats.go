package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// sysStats is a periodically refreshed snapshot of host and process usage.
type sysStats struct {
	CPUPercent float64
	PerCPU     []float64
	MemUsed    uint64
	MemTotal   uint64
	ProcRSS    uint64

	proc   *process.Process
	next   time.Time
	every  time.Duration
	logger *slog.Logger
	warned bool
}

func newSysStats(every time.Duration, logger *slog.Logger) *sysStats {
	s := &sysStats{every: every, logger: logger}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.Warn("process stats unavailable", slog.Any("error", err))
	} else {
		s.proc = p
	}
	return s
}

// update refreshes the snapshot if the sampling interval has elapsed.
func (s *sysStats) update(now time.Time) {
	if now.Before(s.next) {
		return
	}
	s.next = now.Add(s.every)

	// Zero interval compares against the previous call instead of
	// blocking the frame.
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	} else if err != nil {
		s.warn("cpu", err)
	}
	if pct, err := cpu.Percent(0, true); err == nil {
		s.PerCPU = pct
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsed, s.MemTotal = vm.Used, vm.Total
	} else {
		s.warn("memory", err)
	}
	if s.proc != nil {
		if mi, err := s.proc.MemoryInfo(); err == nil {
			s.ProcRSS = mi.RSS
		} else {
			s.warn("process", err)
		}
	}
}

func (s *sysStats) warn(what string, err error) {
	if s.warned {
		return
	}
	s.warned = true
	s.logger.Warn("failed to sample system stats", slog.String("what", what), slog.Any("error", err))
}

func (s *sysStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("cpu_percent", s.CPUPercent),
		slog.Uint64("mem_used", s.MemUsed),
		slog.Uint64("mem_total", s.MemTotal),
		slog.Uint64("rss", s.ProcRSS),
	)
}

func mib(b uint64) float64 { return float64(b) / (1 << 20) }
