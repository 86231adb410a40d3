package repository

import (
    "context"
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

func newGroup(title, slug string) *model.Group {
    return &model.Group{ID: uuid.New().String(), Title: title, Slug: slug, Description: title}
}

func TestGroupSlugUnique(t *testing.T) {
    db := setupTestDB(t)
    repo := NewGroupRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Create(ctx, newGroup("Travel", "travel")))
    err := repo.Create(ctx, newGroup("Travel 2", "travel"))
    assert.ErrorIs(t, err, ErrConflict)

    var cnt int64
    require.NoError(t, db.Model(&model.Group{}).Count(&cnt).Error)
    assert.EqualValues(t, 1, cnt)
}

func TestGroupListOrderedByTitleDesc(t *testing.T) {
    db := setupTestDB(t)
    repo := NewGroupRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Create(ctx, newGroup("Art", "art")))
    require.NoError(t, repo.Create(ctx, newGroup("Travel", "travel")))
    require.NoError(t, repo.Create(ctx, newGroup("Music", "music")))

    items, err := repo.List(ctx, 0, 10)
    require.NoError(t, err)
    require.Len(t, items, 3)
    assert.Equal(t, "Travel", items[0].Title)
    assert.Equal(t, "Music", items[1].Title)
    assert.Equal(t, "Art", items[2].Title)
}

// 删组：引用该组的帖子 group_id 置空，帖子本身保留
func TestGroupDeleteSetsPostGroupNull(t *testing.T) {
    db := setupTestDB(t)
    groupRepo := NewGroupRepository(db)
    postRepo := NewPostRepository(db)
    ctx := context.Background()

    author := seedUser(t, db, "alice")
    g := newGroup("Travel", "travel")
    require.NoError(t, groupRepo.Create(ctx, g))

    p := &model.Post{ID: uuid.New().String(), AuthorID: author.ID, Text: "hello", PubDate: time.Now(), GroupID: &g.ID}
    require.NoError(t, postRepo.Create(ctx, p))

    require.NoError(t, groupRepo.Delete(ctx, g.ID))

    got, err := postRepo.GetByID(ctx, p.ID)
    require.NoError(t, err)
    assert.Nil(t, got.GroupID)
}

func TestGroupUpdateAndNotFound(t *testing.T) {
    db := setupTestDB(t)
    repo := NewGroupRepository(db)
    ctx := context.Background()

    g := newGroup("Travel", "travel")
    require.NoError(t, repo.Create(ctx, g))

    got, err := repo.Update(ctx, g.ID, map[string]any{"title": "Voyage"})
    require.NoError(t, err)
    assert.Equal(t, "Voyage", got.Title)
    assert.Equal(t, "travel", got.Slug)

    _, err = repo.Update(ctx, "missing", map[string]any{"title": "x"})
    assert.ErrorIs(t, err, ErrNotFound)
    assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)
}
