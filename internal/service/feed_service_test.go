package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListAllPaginatesThirteenPosts(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	e.postSeries(t, alice.ID, nil, 13)

	page1, err := e.feed.ListAll(ctxb(), 1)
	require.NoError(t, err)
	require.Len(t, page1.Posts, 10)
	require.Equal(t, int64(13), page1.Page.TotalItems)
	require.True(t, page1.Page.HasNext)
	require.False(t, page1.Page.HasPrev)
	require.Equal(t, "post 12", page1.Posts[0].Text)

	page2, err := e.feed.ListAll(ctxb(), 2)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)
	require.False(t, page2.Page.HasNext)
	require.Equal(t, "post 0", page2.Posts[2].Text)
}

func TestListByGroupUnknownSlug(t *testing.T) {
	e := setup(t)
	_, err := e.feed.ListByGroup(ctxb(), "no-such-group", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByGroupFiltersToGroup(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	golang := e.group(t, "golang")
	other := e.group(t, "random")

	base := time.Now()
	e.post(t, alice.ID, &golang.ID, "in golang", base)
	e.post(t, alice.ID, &other.ID, "in random", base.Add(time.Second))
	e.post(t, alice.ID, nil, "ungrouped", base.Add(2*time.Second))

	view, err := e.feed.ListByGroup(ctxb(), "golang", 1)
	require.NoError(t, err)
	require.Equal(t, "golang", view.Slug)
	require.Len(t, view.Posts, 1)
	require.Equal(t, "in golang", view.Posts[0].Text)
}

func TestListByAuthorReportsCountAndFollowState(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	e.postSeries(t, alice.ID, nil, 13)

	// bob views alice without following her
	view, err := e.feed.ListByAuthor(ctxb(), "alice", bob.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Posts, 10)
	require.Equal(t, int64(13), view.PostCount, "count is the full total, not the page")
	require.False(t, view.Following)

	require.NoError(t, e.rel.Follow(ctxb(), bob.ID, "alice"))
	view, err = e.feed.ListByAuthor(ctxb(), "alice", bob.ID, 1)
	require.NoError(t, err)
	require.True(t, view.Following)

	// anonymous viewer: never "following"
	view, err = e.feed.ListByAuthor(ctxb(), "alice", "", 1)
	require.NoError(t, err)
	require.False(t, view.Following)

	_, err = e.feed.ListByAuthor(ctxb(), "nobody", bob.ID, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListFollowedOnlyFollowedAuthors(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	carol := e.user(t, "carol")

	base := time.Now()
	e.post(t, alice.ID, nil, "from alice", base)
	e.post(t, bob.ID, nil, "from bob", base.Add(time.Second))
	e.post(t, carol.ID, nil, "from carol", base.Add(2*time.Second))

	require.NoError(t, e.rel.Follow(ctxb(), carol.ID, "alice"))

	view, err := e.feed.ListFollowed(ctxb(), carol.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Posts, 1)
	require.Equal(t, "from alice", view.Posts[0].Text)
}

func TestListFollowedEmptyWhenFollowingNobody(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	e.post(t, bob.ID, nil, "unseen", time.Now())

	view, err := e.feed.ListFollowed(ctxb(), alice.ID, 1)
	require.NoError(t, err)
	require.Empty(t, view.Posts)
	require.Equal(t, int64(0), view.Page.TotalItems)
}

func TestListFollowedRequiresAuth(t *testing.T) {
	e := setup(t)
	_, err := e.feed.ListFollowed(ctxb(), "", 1)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPostDetail(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	posts := e.postSeries(t, alice.ID, nil, 3)

	_, err := e.comments.Add(ctxb(), posts[0].ID, bob.ID, "nice one")
	require.NoError(t, err)

	detail, err := e.feed.GetPostDetail(ctxb(), posts[0].ID)
	require.NoError(t, err)
	require.Equal(t, "post 0", detail.Post.Text)
	require.Equal(t, int64(3), detail.AuthorPostCount)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "bob", detail.Comments[0].AuthorUsername)

	_, err = e.feed.GetPostDetail(ctxb(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

// The index cache intentionally serves stale content until the TTL runs out
// or it is cleared; deletions inside the window must not leak through.
func TestIndexCacheServesStalePageUntilCleared(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	posts := e.postSeries(t, alice.ID, nil, 5)

	first, err := e.feed.Index(ctxb(), 1)
	require.NoError(t, err)

	for _, p := range posts[:3] {
		require.NoError(t, e.postRepo.Delete(ctxb(), p.ID))
	}

	second, err := e.feed.Index(ctxb(), 1)
	require.NoError(t, err)
	require.Equal(t, first, second, "within the TTL the cached bytes must be served as-is")

	require.NoError(t, e.feed.ClearCache(ctxb()))

	third, err := e.feed.Index(ctxb(), 1)
	require.NoError(t, err)
	require.NotEqual(t, first, third, "after a clear the deletions must show")

	fresh, err := e.feed.ListAll(ctxb(), 1)
	require.NoError(t, err)
	require.Len(t, fresh.Posts, 2)
}

func TestIndexCacheExpiresByTTL(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	posts := e.postSeries(t, alice.ID, nil, 2)

	first, err := e.feed.Index(ctxb(), 1)
	require.NoError(t, err)

	require.NoError(t, e.postRepo.Delete(ctxb(), posts[0].ID))
	e.mr.FastForward(21 * time.Second)

	second, err := e.feed.Index(ctxb(), 1)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
