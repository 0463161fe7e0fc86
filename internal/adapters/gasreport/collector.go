package gasreport

import (
	"sync"

	"github.com/piggywatt/pgw-cli/internal/domain/config"
	"github.com/piggywatt/pgw-cli/internal/usecase"
	"github.com/samber/lo"
)

// Record is the gas used by one transaction
type Record struct {
	Operation string
	GasUsed   uint64
}

// OperationGas aggregates the records of one operation
type OperationGas struct {
	Operation string
	Calls     int
	Min       uint64
	Max       uint64
	Avg       uint64
	Total     uint64
}

// Collector keeps gas records when REPORT_GAS is set
type Collector struct {
	enabled bool

	mu      sync.Mutex
	records []Record
}

// NewCollector creates a collector, enabled by cfg.ReportGas
func NewCollector(cfg *config.RuntimeConfig) *Collector {
	return &Collector{enabled: cfg.ReportGas}
}

// Enabled reports whether records are kept
func (c *Collector) Enabled() bool {
	return c.enabled
}

// Record stores gasUsed for operation
func (c *Collector) Record(operation string, gasUsed uint64) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, Record{Operation: operation, GasUsed: gasUsed})
}

// Summary aggregates records per operation, in first-seen order
func (c *Collector) Summary() []OperationGas {
	c.mu.Lock()
	defer c.mu.Unlock()

	groups := lo.GroupBy(c.records, func(r Record) string { return r.Operation })
	order := lo.Uniq(lo.Map(c.records, func(r Record, _ int) string { return r.Operation }))

	return lo.Map(order, func(op string, _ int) OperationGas {
		gas := lo.Map(groups[op], func(r Record, _ int) uint64 { return r.GasUsed })
		total := lo.Sum(gas)
		return OperationGas{
			Operation: op,
			Calls:     len(gas),
			Min:       lo.Min(gas),
			Max:       lo.Max(gas),
			Avg:       total / uint64(len(gas)),
			Total:     total,
		}
	})
}

var _ usecase.GasRecorder = (*Collector)(nil)
