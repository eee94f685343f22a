package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatePostWithAndWithoutGroup(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	golang := e.group(t, "golang")

	grouped, err := e.posts.Create(ctxb(), alice.ID, "tagged", "golang", "")
	require.NoError(t, err)
	require.NotNil(t, grouped.GroupID)
	require.Equal(t, golang.ID, *grouped.GroupID)
	require.False(t, grouped.CreatedAt.IsZero())

	plain, err := e.posts.Create(ctxb(), alice.ID, "untagged", "", "")
	require.NoError(t, err)
	require.Nil(t, plain.GroupID)

	_, err = e.posts.Create(ctxb(), alice.ID, "bad group", "missing", "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = e.posts.Create(ctxb(), "", "anonymous", "", "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdatePostOwnershipRules(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	post, err := e.posts.Create(ctxb(), alice.ID, "original", "", "")
	require.NoError(t, err)

	require.ErrorIs(t, e.posts.Update(ctxb(), post.ID, bob.ID, "hijacked", "", ""), ErrForbidden)
	require.ErrorIs(t, e.posts.Update(ctxb(), "missing", alice.ID, "x", "", ""), ErrNotFound)

	require.NoError(t, e.posts.Update(ctxb(), post.ID, alice.ID, "edited", "", ""))
	got, err := e.postRepo.GetByID(ctxb(), post.ID)
	require.NoError(t, err)
	require.Equal(t, "edited", got.Text)
	require.Equal(t, post.CreatedAt.Unix(), got.CreatedAt.Unix(), "created_at is immutable")
}

func TestDeletePostOwnershipRules(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	post, err := e.posts.Create(ctxb(), alice.ID, "to delete", "", "")
	require.NoError(t, err)

	require.ErrorIs(t, e.posts.Delete(ctxb(), post.ID, bob.ID), ErrForbidden)
	require.NoError(t, e.posts.Delete(ctxb(), post.ID, alice.ID))

	got, err := e.postRepo.GetByID(ctxb(), post.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestAddCommentRules(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	post, err := e.posts.Create(ctxb(), alice.ID, "commented", "", "")
	require.NoError(t, err)

	_, err = e.comments.Add(ctxb(), post.ID, "", "anon")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = e.comments.Add(ctxb(), "missing", bob.ID, "lost")
	require.ErrorIs(t, err, ErrNotFound)

	c, err := e.comments.Add(ctxb(), post.ID, bob.ID, "solid post")
	require.NoError(t, err)
	require.Equal(t, post.ID, c.PostID)
}

func TestGroupLifecycle(t *testing.T) {
	e := setup(t)
	alice := e.user(t, "alice")

	_, err := e.groups.Create(ctxb(), "Go", "go", "all things Go")
	require.NoError(t, err)
	got, err := e.groups.GetBySlug(ctxb(), "go")
	require.NoError(t, err)
	require.Equal(t, "Go", got.Title)

	post, err := e.posts.Create(ctxb(), alice.ID, "in go", "go", "")
	require.NoError(t, err)

	require.NoError(t, e.groups.Delete(ctxb(), "go"))
	require.ErrorIs(t, e.groups.Delete(ctxb(), "go"), ErrNotFound)

	survivor, err := e.postRepo.GetByID(ctxb(), post.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	require.Nil(t, survivor.GroupID)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	e := setup(t)

	u, err := e.users.Register(ctxb(), "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", u.PasswordHash)

	_, err = e.users.Register(ctxb(), "alice", "other@example.com", "whatever-pass")
	require.ErrorIs(t, err, ErrUsernameTaken)

	got, err := e.users.Authenticate(ctxb(), "alice", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = e.users.Authenticate(ctxb(), "alice", "wrong-pass")
	require.ErrorIs(t, err, ErrBadCredentials)
	_, err = e.users.Authenticate(ctxb(), "ghost", "whatever")
	require.ErrorIs(t, err, ErrBadCredentials)
}
