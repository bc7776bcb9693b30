package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan walks the catalog and flags products running low.
	TaskLowStockScan = "stock:lowscan"
	// TaskReportWarmup pre-populates the sales report cache.
	TaskReportWarmup = "reports:warmup"
)

// LowStockScanPayload carries scheduling metadata for the scan.
type LowStockScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewLowStockScanTask constructs an Asynq task for the low-stock scan.
func NewLowStockScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(LowStockScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, body, asynq.Queue(QueueDefault)), nil
}

// ReportWarmupPayload names the date range to pre-compute.
type ReportWarmupPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewReportWarmupTask constructs an Asynq task for report cache warmup.
// Empty dates mean "the current day", resolved at handling time.
func NewReportWarmupTask(start, end string) (*asynq.Task, error) {
	body, err := json.Marshal(ReportWarmupPayload{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportWarmup, body, asynq.Queue(QueueDefault)), nil
}
