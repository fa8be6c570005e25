package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerNoCollision(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(0, "red")
	tracker.Track(1, "green")
	tracker.Track(2, "blue")

	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Collisions())
	require.Equal(t, 3, tracker.Count())
}

func TestTrackerDetectsCollision(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(0, "red")
	tracker.Track(0, "blue")
	tracker.Track(1, "green")

	require.True(t, tracker.HasCollision())

	collisions := tracker.Collisions()
	require.Len(t, collisions, 1)
	require.Equal(t, []string{"red", "blue"}, collisions[0])
}

func TestTrackerIgnoresDuplicateCategory(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(0, "red")
	tracker.Track(0, "red")

	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTrackerBucketsSorted(t *testing.T) {
	tracker := NewTracker()
	tracker.Track(5, "a")
	tracker.Track(1, "b")
	tracker.Track(3, "c")

	require.Equal(t, []int{1, 3, 5}, tracker.Buckets())
}
