package diagnostics

import (
	"sync"
	"time"

	"github.com/simplejobbot/jobbot/internal/models"
)

// errorHistoryCap bounds the recent-error buffer; the oldest entry is evicted
// on overflow.
const errorHistoryCap = 20

// Diagnostics owns the process-lifetime error history. Submissions run
// concurrently, so writes are serialized behind a mutex.
type Diagnostics struct {
	mu     sync.Mutex
	errors []models.ErrorRecord
	now    func() time.Time
}

func New() *Diagnostics {
	return &Diagnostics{now: time.Now}
}

// RecordError prepends err to the history, evicting the oldest entry once the
// buffer is full.
func (d *Diagnostics) RecordError(err error) {
	if err == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	record := models.ErrorRecord{Time: d.now(), Message: err.Error()}
	d.errors = append([]models.ErrorRecord{record}, d.errors...)
	if len(d.errors) > errorHistoryCap {
		d.errors = d.errors[:errorHistoryCap]
	}
}

// RecentErrors returns the history newest first.
func (d *Diagnostics) RecentErrors() []models.ErrorRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.ErrorRecord, len(d.errors))
	copy(out, d.errors)
	return out
}
