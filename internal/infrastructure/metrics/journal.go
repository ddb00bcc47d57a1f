package metrics

import (
	"context"

	"rolesync/internal/domain/entities"
	"rolesync/internal/ports/output"
)

var _ output.SyncJournal = (*instrumentedJournal)(nil)

// InstrumentJournal decorates a journal so that every recorded role
// operation also increments the operation counter. The journal sees exactly
// the operations that were executed, which makes it the natural counting
// point.
func InstrumentJournal(m *Metrics, next output.SyncJournal) output.SyncJournal {
	return &instrumentedJournal{metrics: m, next: next}
}

type instrumentedJournal struct {
	metrics *Metrics
	next    output.SyncJournal
}

func (j *instrumentedJournal) Record(ctx context.Context, a entities.RoleAction) error {
	j.metrics.RoleOperationsTotal.WithLabelValues(a.Action).Inc()
	return j.next.Record(ctx, a)
}
