package workers

import (
	"context"
	"log/slog"
	"party-lab/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStatsWorker samples CPU, memory and threads of one process at a fixed interval.
type ProcessStatsWorker struct {
	log            *slog.Logger
	pid            int32
	metricInterval time.Duration
	metrics        observability.IProcessMetrics
}

func NewProcessStatsWorker(
	log *slog.Logger,
	pid int32,
	metricInterval time.Duration,
	metrics observability.IProcessMetrics,
) *ProcessStatsWorker {
	return &ProcessStatsWorker{log: log, pid: pid, metricInterval: metricInterval, metrics: metrics}
}

func (w *ProcessStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process sampling")
			return nil
		case <-ticker.C:
			sample, err := w.sample(p)
			if err != nil {
				w.log.Warn("Error while sampling process", "pid", w.pid, "err", err)
				continue
			}
			w.metrics.ObserveProcess(sample)
		}
	}
}

func (w *ProcessStatsWorker) sample(p *process.Process) (observability.ProcessSample, error) {
	cpu, err := p.CPUPercent()
	if err != nil {
		return observability.ProcessSample{}, err
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		return observability.ProcessSample{}, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return observability.ProcessSample{}, err
	}
	threads, err := p.NumThreads()
	if err != nil {
		return observability.ProcessSample{}, err
	}
	return observability.ProcessSample{
		CPUPercent:    cpu,
		MemoryPercent: float64(ram),
		ResidentBytes: info.RSS,
		Threads:       threads,
	}, nil
}
