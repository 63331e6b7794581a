// Package notifier provides delivery sinks for schedule-firing
// notifications. Delivery is best-effort by contract: a failed notification
// never affects the firing that triggered it.
package notifier

import (
	"context"
	"log"

	"github.com/simaogato/moneybook-backend/internal/domain"
)

// LogNotifier writes firing notifications to the process log. It stands in
// for push/email delivery, which is owned by external services.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier instance
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// ScheduleFired logs the materialized record
func (n *LogNotifier) ScheduleFired(_ context.Context, schedule *domain.ScheduledRecord, record *domain.Record) error {
	log.Printf("schedule %s fired: %s record %s for %s on %s",
		schedule.Record.ID, schedule.Type, record.ID, record.Amount, record.Date.Format("2006-01-02"))
	return nil
}
