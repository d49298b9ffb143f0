package repository

import (
	"math"
	"testing"
	"time"

	"github.com/blog-next/internal/models"
)

func TestPostListFiltersCombineWithAnd(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "alice")
	tech := createTestCategory(t, db, "tech", 1)
	daily := createTestCategory(t, db, "daily", 2)
	goTag := createTestTag(t, db, "Go", "go")

	match := createTestPost(t, db, author.ID, "Go generics", "go-generics",
		withStatus(models.PostStatusPublished), withCategory(tech.ID))
	draft := createTestPost(t, db, author.ID, "Go drafts", "go-drafts", withCategory(tech.ID))
	otherCategory := createTestPost(t, db, author.ID, "Go at home", "go-at-home",
		withStatus(models.PostStatusPublished), withCategory(daily.ID))
	for _, post := range []*models.Post{match, draft, otherCategory} {
		if err := repo.ReplaceTags(t.Context(), post.ID, []uint{goTag.ID}); err != nil {
			t.Fatalf("replace tags failed: %v", err)
		}
	}

	status := models.PostStatusPublished
	rows, total, err := repo.List(t.Context(), PostListFilter{
		Page:       1,
		PageSize:   10,
		Status:     &status,
		CategoryID: &tech.ID,
		TagID:      &goTag.ID,
		Search:     "Go",
	})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("want exactly one match, got total=%d len=%d", total, len(rows))
	}
	if rows[0].ID != match.ID {
		t.Fatalf("unexpected post %d", rows[0].ID)
	}
	if rows[0].Author.Username != "alice" {
		t.Fatalf("author should be preloaded, got %+v", rows[0].Author)
	}
	if rows[0].Category == nil || rows[0].Category.Slug != "tech" {
		t.Fatalf("category should be preloaded, got %+v", rows[0].Category)
	}
	if len(rows[0].Tags) != 1 || rows[0].Tags[0].Slug != "go" {
		t.Fatalf("tags should be preloaded, got %+v", rows[0].Tags)
	}
}

func TestPostListSearchIsCaseSensitive(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "bob")
	createTestPost(t, db, author.ID, "Learning Go", "learning-go")
	createTestPost(t, db, author.ID, "plain", "plain", withContent("we love go routines"))

	rows, total, err := repo.List(t.Context(), PostListFilter{Page: 1, PageSize: 10, Search: "Go"})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Slug != "learning-go" {
		t.Fatalf("title match only expected, got total=%d rows=%+v", total, rows)
	}

	rows, total, err = repo.List(t.Context(), PostListFilter{Page: 1, PageSize: 10, Search: "go"})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Slug != "plain" {
		t.Fatalf("content match only expected, got total=%d rows=%+v", total, rows)
	}
}

func TestPostListOrderAndPagination(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "carol")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	oldest := createTestPost(t, db, author.ID, "oldest", "oldest", withCreatedAt(base))
	tieA := createTestPost(t, db, author.ID, "tie a", "tie-a", withCreatedAt(base.Add(time.Hour)))
	tieB := createTestPost(t, db, author.ID, "tie b", "tie-b", withCreatedAt(base.Add(time.Hour)))
	newest := createTestPost(t, db, author.ID, "newest", "newest", withCreatedAt(base.Add(2*time.Hour)))

	rows, total, err := repo.List(t.Context(), PostListFilter{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("list page 1 failed: %v", err)
	}
	if total != 4 {
		t.Fatalf("total want 4 got %d", total)
	}
	wantIDs := []uint{newest.ID, tieA.ID, tieB.ID}
	if len(rows) != len(wantIDs) {
		t.Fatalf("page 1 len want 3 got %d", len(rows))
	}
	for idx, id := range wantIDs {
		if rows[idx].ID != id {
			t.Fatalf("page 1 row %d want id %d got %d", idx, id, rows[idx].ID)
		}
	}

	rows, _, err = repo.List(t.Context(), PostListFilter{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != oldest.ID {
		t.Fatalf("page 2 should only hold the oldest post, got %+v", rows)
	}

	rows, total, err = repo.List(t.Context(), PostListFilter{Page: 5, PageSize: 3})
	if err != nil {
		t.Fatalf("list page past end failed: %v", err)
	}
	if len(rows) != 0 || total != 4 {
		t.Fatalf("page past end want empty with total 4, got len=%d total=%d", len(rows), total)
	}
}

func TestPostListExcludesSoftDeleted(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "dave")
	kept := createTestPost(t, db, author.ID, "kept", "kept")
	removed := createTestPost(t, db, author.ID, "removed", "removed")

	deleted, err := repo.Delete(t.Context(), removed.ID)
	if err != nil || !deleted {
		t.Fatalf("delete post failed: deleted=%v err=%v", deleted, err)
	}

	rows, total, err := repo.List(t.Context(), PostListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || rows[0].ID != kept.ID {
		t.Fatalf("soft deleted post should be hidden, got total=%d rows=%+v", total, rows)
	}

	got, err := repo.GetDetailByID(t.Context(), removed.ID)
	if err != nil {
		t.Fatalf("get deleted post failed: %v", err)
	}
	if got != nil {
		t.Fatalf("soft deleted post should not be found by id")
	}

	again, err := repo.Delete(t.Context(), removed.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if again {
		t.Fatalf("second delete should not affect any live row")
	}
}

func TestPostSlugUniqueAmongLiveRows(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "erin")
	first := createTestPost(t, db, author.ID, "Hello", "hello")

	dup := &models.Post{UserID: author.ID, Title: "Hello", Slug: "hello", Content: "x", Status: models.PostStatusDraft}
	err := repo.Create(t.Context(), dup)
	if !IsDuplicateKey(err) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	exists, err := repo.SlugExists(t.Context(), "hello", 0)
	if err != nil || !exists {
		t.Fatalf("slug should exist: exists=%v err=%v", exists, err)
	}
	exists, err = repo.SlugExists(t.Context(), "hello", first.ID)
	if err != nil || exists {
		t.Fatalf("own row must be excluded: exists=%v err=%v", exists, err)
	}

	if _, err := repo.Delete(t.Context(), first.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}
	reused := &models.Post{UserID: author.ID, Title: "Hello", Slug: "hello", Content: "x", Status: models.PostStatusDraft}
	if err := repo.Create(t.Context(), reused); err != nil {
		t.Fatalf("slug of a soft deleted post should be reusable: %v", err)
	}
}

func TestPostIncrementViewCount(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "frank")
	post := createTestPost(t, db, author.ID, "views", "views")
	before, err := repo.GetByID(t.Context(), post.ID)
	if err != nil {
		t.Fatalf("load post failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		hit, err := repo.IncrementViewCount(t.Context(), post.ID)
		if err != nil || !hit {
			t.Fatalf("increment failed: hit=%v err=%v", hit, err)
		}
	}
	got, err := repo.GetByID(t.Context(), post.ID)
	if err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if got.ViewCount != 3 {
		t.Fatalf("view count want 3 got %d", got.ViewCount)
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("view increment must not touch updated_at")
	}

	hit, err := repo.IncrementViewCount(t.Context(), 9999)
	if err != nil {
		t.Fatalf("increment missing post should not fail: %v", err)
	}
	if hit {
		t.Fatalf("missing post should not report a hit")
	}
}

func TestPostReplaceTags(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "grace")
	post := createTestPost(t, db, author.ID, "tags", "tags")
	zeta := createTestTag(t, db, "Zeta", "zeta")
	alpha := createTestTag(t, db, "Alpha", "alpha")
	beta := createTestTag(t, db, "Beta", "beta")

	if err := repo.ReplaceTags(t.Context(), post.ID, []uint{zeta.ID, alpha.ID}); err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}
	got, err := repo.GetDetailByID(t.Context(), post.ID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[0].Slug != "alpha" || got.Tags[1].Slug != "zeta" {
		t.Fatalf("tags should be sorted by name, got %+v", got.Tags)
	}

	if err := repo.ReplaceTags(t.Context(), post.ID, []uint{beta.ID}); err != nil {
		t.Fatalf("replace tags again failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count post tags failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("tags should be fully replaced, got %d rows", count)
	}

	if err := repo.ReplaceTags(t.Context(), post.ID, nil); err != nil {
		t.Fatalf("clear tags failed: %v", err)
	}
	got, err = repo.GetDetailBySlug(t.Context(), "tags")
	if err != nil {
		t.Fatalf("get post by slug failed: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("tags should be cleared, got %+v", got.Tags)
	}
}

func TestPostListHugePageIsEmpty(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "hank")
	createTestPost(t, db, author.ID, "only", "only")

	rows, total, err := repo.List(t.Context(), PostListFilter{Page: 100000000000000000, PageSize: 100})
	if err != nil {
		t.Fatalf("list huge page failed: %v", err)
	}
	if len(rows) != 0 || total != 1 {
		t.Fatalf("huge page want empty with total 1, got len=%d total=%d", len(rows), total)
	}
}

func TestPageOffsetClampsOverflow(t *testing.T) {
	cases := []struct {
		page     int
		pageSize int
		want     int
	}{
		{page: 0, pageSize: 10, want: 0},
		{page: 3, pageSize: 10, want: 20},
		{page: 100000000000000000, pageSize: 100, want: math.MaxInt},
		{page: math.MaxInt, pageSize: 1, want: math.MaxInt - 1},
	}
	for _, tc := range cases {
		if got := pageOffset(tc.page, tc.pageSize); got != tc.want {
			t.Fatalf("pageOffset(%d, %d) want %d got %d", tc.page, tc.pageSize, tc.want, got)
		}
	}
}

func TestPostListWhitespaceSearchIsApplied(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "ivy")
	createTestPost(t, db, author.ID, "spaced", "spaced", withContent("two  spaces"))
	createTestPost(t, db, author.ID, "single", "single", withContent("one space"))

	rows, total, err := repo.List(t.Context(), PostListFilter{Page: 1, PageSize: 10, Search: "  "})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Slug != "spaced" {
		t.Fatalf("whitespace search must match literally, got total=%d rows=%+v", total, rows)
	}
}

func TestPostUpdateKeepsViewCount(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "jack")
	post := createTestPost(t, db, author.ID, "counted", "counted")

	loaded, err := repo.GetByID(t.Context(), post.ID)
	if err != nil {
		t.Fatalf("load post failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.IncrementViewCount(t.Context(), post.ID); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	loaded.Title = "counted again"
	if err := repo.Update(t.Context(), loaded); err != nil {
		t.Fatalf("update post failed: %v", err)
	}
	got, err := repo.GetByID(t.Context(), post.ID)
	if err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if got.Title != "counted again" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.ViewCount != 2 {
		t.Fatalf("stale update must keep view count 2, got %d", got.ViewCount)
	}
}
