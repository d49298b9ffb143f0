package repository

import "testing"

func TestCategoryAndTagListOrdering(t *testing.T) {
	db := setupRepositoryTestDB(t)
	createTestCategory(t, db, "daily", 2)
	createTestCategory(t, db, "tech", 1)
	createTestTag(t, db, "PostgreSQL", "postgresql")
	createTestTag(t, db, ".NET", "dotnet")

	categories, err := NewCategoryRepository(db).List(t.Context())
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 2 || categories[0].Slug != "tech" {
		t.Fatalf("categories should be ordered by display order, got %+v", categories)
	}

	tagRepo := NewTagRepository(db)
	tags, err := tagRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list tags failed: %v", err)
	}
	if len(tags) != 2 || tags[0].Slug != "dotnet" {
		t.Fatalf("tags should be ordered by name, got %+v", tags)
	}

	found, err := tagRepo.ListByIDs(t.Context(), []uint{tags[0].ID, 9999})
	if err != nil {
		t.Fatalf("list tags by ids failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("only existing tag ids should resolve, got %+v", found)
	}

	missing, err := NewCategoryRepository(db).GetByID(t.Context(), 9999)
	if err != nil || missing != nil {
		t.Fatalf("missing category should return nil, nil: %+v %v", missing, err)
	}
}

func TestUserRepositoryGetByID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	author := createTestUser(t, db, "writer")
	repo := NewUserRepository(db)

	found, err := repo.GetByID(t.Context(), author.ID)
	if err != nil || found == nil || found.Username != "writer" {
		t.Fatalf("expected author, got %+v %v", found, err)
	}

	if err := db.Delete(author).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	gone, err := repo.GetByID(t.Context(), author.ID)
	if err != nil || gone != nil {
		t.Fatalf("soft deleted user should not resolve: %+v %v", gone, err)
	}
}
