package gate

import (
	"sync"
	"time"

	mooddomain "github.com/lunapup/adoption-api/internal/domains/mood/domain"
)

// DebounceInterval is the quiet period after the last keystroke before a
// mood evaluation fires.
const DebounceInterval = 400 * time.Millisecond

// PreviewTracker applies mood classifications in issuance order: each
// evaluation takes a monotonically increasing stamp, and only the
// response for the most recently issued stamp is applied. Stale
// responses are discarded on arrival regardless of arrival order.
type PreviewTracker struct {
	mu     sync.Mutex
	issued uint64
	label  mooddomain.Label
}

// NewPreviewTracker starts with the normal label.
func NewPreviewTracker() *PreviewTracker {
	return &PreviewTracker{label: mooddomain.LabelNormal}
}

// Issue reserves the stamp for a new evaluation, superseding all
// in-flight ones.
func (t *PreviewTracker) Issue() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.issued
}

// Apply sets the label if stamp is still the latest issued. It reports
// whether the response was applied.
func (t *PreviewTracker) Apply(stamp uint64, label mooddomain.Label) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if stamp != t.issued {
		return false
	}
	t.label = label
	return true
}

// Current returns the label currently shown.
func (t *PreviewTracker) Current() mooddomain.Label {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.label
}
