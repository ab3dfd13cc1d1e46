package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every five minutes (seconds field first).
const DefaultAuditSchedule = "0 */5 * * * *"

// InconsistentOrdersFinder runs the consistency audit query.
type InconsistentOrdersFinder interface {
	Handle(ctx context.Context, query queries.FindInconsistentOrdersQuery) ([]queries.InconsistentOrder, error)
}

// ConsistencyAuditJob periodically checks stored orders against the
// consistency rules and logs every offender.
type ConsistencyAuditJob struct {
	handler      InconsistentOrdersFinder
	schedule     string
	cron         *cron.Cron
	inconsistent prometheus.Gauge
	logger       *slog.Logger
}

// NewConsistencyAuditJob creates the audit job. The number of offenders found
// by the last run is exported as orders_audit_inconsistent_orders.
func NewConsistencyAuditJob(
	handler InconsistentOrdersFinder,
	schedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*ConsistencyAuditJob, error) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "orders",
		Subsystem: "audit",
		Name:      "inconsistent_orders",
		Help:      "Orders whose stored total disagrees with their items at the last audit.",
	})
	if err := registerer.Register(gauge); err != nil {
		return nil, err
	}

	return &ConsistencyAuditJob{
		handler:      handler,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		inconsistent: gauge,
		logger:       logger.With("component", "consistency_audit_job"),
	}, nil
}

// Run performs one audit pass.
func (j *ConsistencyAuditJob) Run(ctx context.Context) {
	found, err := j.handler.Handle(ctx, queries.NewFindInconsistentOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Consistency audit failed", "error", err)
		return
	}

	j.inconsistent.Set(float64(len(found)))
	for _, o := range found {
		j.logger.WarnContext(ctx, "Inconsistent order", "order_id", o.OrderID, "reason", o.Reason.Error())
	}
}

// Start schedules the audit.
func (j *ConsistencyAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consistency audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *ConsistencyAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Consistency audit job stopped")
}
