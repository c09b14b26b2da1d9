package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_Like(t *testing.T) {
	start := EngagementState{LikeCount: 3}

	on, turnOn := start.Toggle(KindLike)
	assert.True(t, turnOn)
	assert.True(t, on.IsLiked)
	assert.Equal(t, int64(4), on.LikeCount)

	off, turnOn := on.Toggle(KindLike)
	assert.False(t, turnOn)
	assert.Equal(t, start, off)
}

func TestToggle_LikeCountFloorsAtZero(t *testing.T) {
	// A stale snapshot can report liked with a zero count
	start := EngagementState{IsLiked: true, LikeCount: 0}

	next, turnOn := start.Toggle(KindLike)

	assert.False(t, turnOn)
	assert.False(t, next.IsLiked)
	assert.Equal(t, int64(0), next.LikeCount)
}

func TestToggle_SaveHasNoCount(t *testing.T) {
	start := EngagementState{LikeCount: 5, RepostCount: 2}

	next, turnOn := start.Toggle(KindSave)

	assert.True(t, turnOn)
	assert.True(t, next.IsSaved)
	assert.Equal(t, start.LikeCount, next.LikeCount)
	assert.Equal(t, start.RepostCount, next.RepostCount)
}

func TestToggle_Repost(t *testing.T) {
	start := EngagementState{RepostCount: 1}

	on, turnOn := start.Toggle(KindRepost)
	assert.True(t, turnOn)
	assert.Equal(t, int64(2), on.RepostCount)

	off, _ := on.Toggle(KindRepost)
	assert.Equal(t, start, off)
}

func TestToggle_UnknownKindIsIdentity(t *testing.T) {
	start := EngagementState{LikeCount: 3, IsSaved: true}

	next, turnOn := start.Toggle(EngagementKind("boost"))

	assert.False(t, turnOn)
	assert.Equal(t, start, next)
}

func TestToggle_DoesNotMutateReceiver(t *testing.T) {
	start := EngagementState{LikeCount: 3}

	_, _ = start.Toggle(KindLike)

	assert.Equal(t, int64(3), start.LikeCount)
	assert.False(t, start.IsLiked)
}

func TestWithQuoteRepost(t *testing.T) {
	fresh := EngagementState{RepostCount: 2}
	next := fresh.WithQuoteRepost()
	assert.True(t, next.IsReposted)
	assert.Equal(t, int64(3), next.RepostCount)

	already := EngagementState{RepostCount: 2, IsReposted: true}
	again := already.WithQuoteRepost()
	assert.Equal(t, already, again)
}
