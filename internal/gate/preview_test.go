package gate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	mooddomain "github.com/lunapup/adoption-api/internal/domains/mood/domain"
)

func TestPreviewTracker_StartsNormal(t *testing.T) {
	tr := NewPreviewTracker()
	require.Equal(t, mooddomain.LabelNormal, tr.Current())
}

func TestPreviewTracker_AppliesLatestStamp(t *testing.T) {
	tr := NewPreviewTracker()
	stamp := tr.Issue()
	require.True(t, tr.Apply(stamp, mooddomain.LabelAlegre))
	require.Equal(t, mooddomain.LabelAlegre, tr.Current())
}

func TestPreviewTracker_DiscardsStaleResponses(t *testing.T) {
	tr := NewPreviewTracker()
	first := tr.Issue()
	second := tr.Issue()

	// The older response arrives last; issuance order wins, not arrival.
	require.True(t, tr.Apply(second, mooddomain.LabelDudosa))
	require.False(t, tr.Apply(first, mooddomain.LabelMolesta))
	require.Equal(t, mooddomain.LabelDudosa, tr.Current())
}

func TestPreviewTracker_StaleDiscardEvenBeforeLatestArrives(t *testing.T) {
	tr := NewPreviewTracker()
	first := tr.Issue()
	tr.Issue()

	require.False(t, tr.Apply(first, mooddomain.LabelMolesta))
	require.Equal(t, mooddomain.LabelNormal, tr.Current())
}

func TestPreviewTracker_StampsAreMonotonic(t *testing.T) {
	tr := NewPreviewTracker()
	var prev uint64
	for i := 0; i < 100; i++ {
		s := tr.Issue()
		require.Greater(t, s, prev)
		prev = s
	}
}

func TestPreviewTracker_ConcurrentIssueIsSafe(t *testing.T) {
	tr := NewPreviewTracker()
	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := tr.Issue()
			_, dup := seen.LoadOrStore(s, struct{}{})
			require.False(t, dup)
		}()
	}
	wg.Wait()
}
