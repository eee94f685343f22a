package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestFollowTwiceCreatesOneEdge(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")

	require.NoError(t, e.rel.Follow(ctxb(), bob.ID, "alice"))
	require.NoError(t, e.rel.Follow(ctxb(), bob.ID, "alice"))

	var cnt int64
	require.NoError(t, e.db.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", bob.ID, alice.ID).Count(&cnt).Error)
	require.Equal(t, int64(1), cnt)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")

	require.NoError(t, e.rel.Follow(ctxb(), bob.ID, "alice"))
	ok, err := e.rel.IsFollowing(ctxb(), bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, e.rel.Unfollow(ctxb(), bob.ID, "alice"))
	ok, err = e.rel.IsFollowing(ctxb(), bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnfollowNeverFollowed(t *testing.T) {
	e := setup(t)
	e.user(t, "alice")
	bob := e.user(t, "bob")

	err := e.rel.Unfollow(ctxb(), bob.ID, "alice")
	require.ErrorIs(t, err, ErrNotFollowing)
}

func TestSelfFollowRejected(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")

	err := e.rel.Follow(ctxb(), alice.ID, "alice")
	require.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollowUnknownAuthor(t *testing.T) {
	e := setup(t)
	bob := e.user(t, "bob")

	require.ErrorIs(t, e.rel.Follow(ctxb(), bob.ID, "ghost"), ErrNotFound)
	require.ErrorIs(t, e.rel.Unfollow(ctxb(), bob.ID, "ghost"), ErrNotFound)
}

func TestFollowRequiresAuth(t *testing.T) {
	e := setup(t)
	e.user(t, "alice")

	require.ErrorIs(t, e.rel.Follow(ctxb(), "", "alice"), ErrUnauthorized)
	require.ErrorIs(t, e.rel.Unfollow(ctxb(), "", "alice"), ErrUnauthorized)
}

func TestIsFollowingAnonymous(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")

	ok, err := e.rel.IsFollowing(ctxb(), "", alice.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
