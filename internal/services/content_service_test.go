package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

type contentFixture struct {
	svc         *ContentService
	db          *gorm.DB
	author      *models.User
	contentType *models.ContentType
	otherType   *models.ContentType
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()
	db := newTestDB(t)
	scope := repository.NewGormScope(db)
	ctx := context.Background()

	users := NewUserService(repository.NewGormUserRepository(db), NewBcryptHasher(), scope, testConfig())
	author, err := users.CreateUser(ctx, &models.User{Username: "author", Email: "author@x.com", Password: "longenough1"})
	require.NoError(t, err)

	types := NewContentTypeService(repository.NewGormContentTypeRepository(db), scope)
	blog, err := types.CreateContentType(ctx, &models.ContentType{Name: "Blog Post", APIIdentifier: "blog_post"})
	require.NoError(t, err)
	page, err := types.CreateContentType(ctx, &models.ContentType{Name: "Landing Page", APIIdentifier: "landing_page"})
	require.NoError(t, err)

	return &contentFixture{
		svc:         NewContentService(repository.NewGormContentRepository(db), scope),
		db:          db,
		author:      author,
		contentType: blog,
		otherType:   page,
	}
}

func (f *contentFixture) candidate(slug string, data string) *models.Content {
	c := &models.Content{
		ContentTypeID: f.contentType.ID,
		AuthorID:      f.author.ID,
		Slug:          slug,
	}
	if data != "" {
		c.ContentData = datatypes.JSON(data)
	}
	return c
}

func TestCreateContent(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	content, err := f.svc.CreateContent(ctx, f.candidate("hello-world", `{"title":"Hello"}`))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, content.ID)
	assert.Equal(t, models.StatusDraft, content.Status)
	assert.Equal(t, 1, content.Version)
	assert.Nil(t, content.PublishDate)
}

func TestCreateContentDuplicateSlug(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateContent(ctx, f.candidate("hello-world", `{"title":"Hello"}`))
	require.NoError(t, err)

	_, err = f.svc.CreateContent(ctx, f.candidate("hello-world", `{"title":"Other"}`))
	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "slug", dup.Field)
	assert.Equal(t, "slug 'hello-world' is already taken", err.Error())

	// No write happened for the losing candidate.
	items, err := f.svc.ListByContentType(ctx, f.contentType.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateContentSameSlugDifferentType(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateContent(ctx, f.candidate("hello-world", `{"title":"Hello"}`))
	require.NoError(t, err)

	// Slug uniqueness is scoped to the content type.
	other := f.candidate("hello-world", `{"title":"Hello"}`)
	other.ContentTypeID = f.otherType.ID
	_, err = f.svc.CreateContent(ctx, other)
	require.NoError(t, err)
}

func TestCreateContentValidation(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	bad := f.candidate("Hello World", "")
	_, err := f.svc.CreateContent(ctx, bad)
	var invalid *models.ValidationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "slug", invalid.Field)

	noAuthor := f.candidate("hello-world", "")
	noAuthor.AuthorID = uuid.Nil
	_, err = f.svc.CreateContent(ctx, noAuthor)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "author_id", invalid.Field)
}

func TestPublishContent(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateContent(ctx, f.candidate("hello-world", `{"title":"Hello"}`))
	require.NoError(t, err)

	before := time.Now().UTC()
	published, err := f.svc.PublishContent(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPublished, published.Status)
	require.NotNil(t, published.PublishDate)
	assert.False(t, published.PublishDate.Before(before))
	assert.False(t, published.PublishDate.After(time.Now().UTC()))

	// No state-machine guard: publishing again succeeds and refreshes the date.
	again, err := f.svc.PublishContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, again.Status)
}

func TestPublishContentNotFound(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.PublishContent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestPublishContentEmpty(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	for _, data := range []string{"", "null", "{}", "   "} {
		slug := "empty-" + uuid.NewString()[:8]
		created, err := f.svc.CreateContent(ctx, f.candidate(slug, data))
		require.NoError(t, err)

		_, err = f.svc.PublishContent(ctx, created.ID)
		assert.ErrorIs(t, err, ErrEmptyContent, "data %q should be treated as blank", data)

		// Status must be left unchanged in the store.
		stored, err := f.svc.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, stored.Status)
		assert.Nil(t, stored.PublishDate)
	}
}

func TestContentFinders(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateContent(ctx, f.candidate("first-post", `{"title":"First"}`))
	require.NoError(t, err)
	_, err = f.svc.CreateContent(ctx, f.candidate("second-post", `{"title":"Second"}`))
	require.NoError(t, err)

	_, err = f.svc.PublishContent(ctx, first.ID)
	require.NoError(t, err)

	bySlug, err := f.svc.FindBySlug(ctx, f.contentType.ID, "first-post")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, first.ID, bySlug.ID)

	absent, err := f.svc.FindBySlug(ctx, f.contentType.ID, "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, absent)

	drafts, err := f.svc.ListByContentTypeAndStatus(ctx, f.contentType.ID, models.StatusDraft)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "second-post", drafts[0].Slug)

	byAuthor, err := f.svc.ListByAuthor(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	window, err := f.svc.ListPublishedBetween(ctx, time.Now().UTC().Add(-time.Minute), time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, first.ID, window[0].ID)

	matches, err := f.svc.SearchSlug(ctx, "second")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "second-post", matches[0].Slug)
}
