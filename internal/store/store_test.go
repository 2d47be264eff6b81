// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "folio-test.db")

	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/folio.db")
	if !strings.HasPrefix(dsn, "file:/tmp/folio.db?") {
		t.Errorf("DSN = %q, want file: prefix with query", dsn)
	}
	for _, want := range []string{"_time_format=sqlite", "foreign_keys%281%29", "journal_mode%28WAL%29"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN = %q, missing %q", dsn, want)
		}
	}

	if got := DSN("x.db?mode=ro"); !strings.Contains(got, "?mode=ro&") {
		t.Errorf("DSN with existing query = %q", got)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestUserAndRoles(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	user, err := q.CreateUser(ctx, CreateUserParams{
		ID:           "u1",
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.LastLoginAt.Valid {
		t.Error("LastLoginAt should be NULL for a new user")
	}

	got, err := q.GetUserByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != "u1" || got.Name != "Test User" {
		t.Errorf("GetUserByEmail = %+v", got)
	}

	if _, err := q.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetUserByEmail(missing) err = %v, want sql.ErrNoRows", err)
	}

	for _, role := range []string{"user", "admin", "admin"} {
		if err := q.CreateUserRole(ctx, CreateUserRoleParams{
			ID: "r-" + role + now.String(), UserID: user.ID, Role: role, CreatedAt: now,
		}); err != nil {
			t.Fatalf("CreateUserRole(%s): %v", role, err)
		}
		now = now.Add(time.Nanosecond)
	}

	roles, err := q.ListUserRoles(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListUserRoles: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("len(roles) = %d, want 2 (duplicate ignored)", len(roles))
	}
	if roles[0].Role != "admin" {
		t.Errorf("roles[0] = %q, want admin first", roles[0].Role)
	}

	err = q.CreateUserRole(ctx, CreateUserRoleParams{ID: "bad", UserID: user.ID, Role: "editor", CreatedAt: now})
	if err == nil {
		t.Error("expected CHECK constraint error for unknown role")
	}

	login := time.Now().UTC()
	if err := q.UpdateUserLastLogin(ctx, UpdateUserLastLoginParams{
		LastLoginAt: sql.NullTime{Time: login, Valid: true}, ID: user.ID,
	}); err != nil {
		t.Fatalf("UpdateUserLastLogin: %v", err)
	}
	got, _ = q.GetUserByID(ctx, user.ID)
	if !got.LastLoginAt.Valid {
		t.Error("LastLoginAt should be set")
	}

	count, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 1 {
		t.Errorf("CountUsers = %d, want 1", count)
	}
}

func TestExperienceOrdering(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	// Equal sort orders keep insertion order.
	for _, e := range []struct {
		id    string
		order int64
	}{{"c", 2}, {"a", 1}, {"b", 1}} {
		if _, err := q.CreateExperience(ctx, CreateExperienceParams{
			ID: e.id, RoleEn: ns("Role " + e.id), Company: "Acme", Period: "2020",
			SortOrder: e.order, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("CreateExperience(%s): %v", e.id, err)
		}
	}

	items, err := q.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences: %v", err)
	}
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "a,b,c" {
		t.Errorf("order = %v, want [a b c]", ids)
	}

	updated, err := q.UpdateExperience(ctx, UpdateExperienceParams{
		RoleEn: ns("Lead"), RoleVn: ns("Trưởng nhóm"), Company: "Acme", Period: "2021",
		SortOrder: 0, UpdatedAt: now.Add(time.Minute), ID: "c",
	})
	if err != nil {
		t.Fatalf("UpdateExperience: %v", err)
	}
	if updated.RoleVn.String != "Trưởng nhóm" || updated.SortOrder != 0 {
		t.Errorf("UpdateExperience = %+v", updated)
	}

	items, _ = q.ListExperiences(ctx)
	if items[0].ID != "c" {
		t.Errorf("first after reorder = %s, want c", items[0].ID)
	}

	if _, err := q.UpdateExperience(ctx, UpdateExperienceParams{ID: "missing", Company: "x", Period: "y"}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateExperience(missing) err = %v, want sql.ErrNoRows", err)
	}

	if err := q.DeleteExperience(ctx, "a"); err != nil {
		t.Fatalf("DeleteExperience: %v", err)
	}
	// Deleting twice is not an error.
	if err := q.DeleteExperience(ctx, "a"); err != nil {
		t.Fatalf("DeleteExperience again: %v", err)
	}
	count, _ := q.CountExperiences(ctx)
	if count != 2 {
		t.Errorf("CountExperiences = %d, want 2", count)
	}
}

func TestEducationNullableVN(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	edu, err := q.CreateEducation(ctx, CreateEducationParams{
		ID: "e1", DegreeEn: ns("BSc Computer Science"), School: "HUST", Period: "2010 - 2014",
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}
	if edu.DegreeVn.Valid {
		t.Error("DegreeVn should be NULL when not provided")
	}

	got, err := q.GetEducationByID(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEducationByID: %v", err)
	}
	if got.DegreeEn.String != "BSc Computer Science" || got.DescriptionEn.Valid {
		t.Errorf("GetEducationByID = %+v", got)
	}
}

func createPost(t *testing.T, q *Queries, id, slug string, published bool, created time.Time) BlogPost {
	t.Helper()
	var publishedAt sql.NullTime
	if published {
		publishedAt = sql.NullTime{Time: created, Valid: true}
	}
	post, err := q.CreateBlogPost(context.Background(), CreateBlogPostParams{
		ID: id, TitleEn: ns("Post " + id), Slug: slug, Published: published,
		PublishedAt: publishedAt, CreatedAt: created, UpdatedAt: created,
	})
	if err != nil {
		t.Fatalf("CreateBlogPost(%s): %v", id, err)
	}
	return post
}

func TestBlogPostLists(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	createPost(t, q, "p1", "first", true, base)
	createPost(t, q, "p2", "second", false, base.Add(time.Hour))
	createPost(t, q, "p3", "third", true, base.Add(2*time.Hour))

	all, err := q.ListBlogPosts(ctx)
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(all) != 3 || all[0].ID != "p3" || all[2].ID != "p1" {
		t.Errorf("ListBlogPosts order wrong: %v", postIDs(all))
	}

	pub, err := q.ListPublishedBlogPosts(ctx)
	if err != nil {
		t.Fatalf("ListPublishedBlogPosts: %v", err)
	}
	if len(pub) != 2 || pub[0].ID != "p3" || pub[1].ID != "p1" {
		t.Errorf("ListPublishedBlogPosts = %v, want [p3 p1]", postIDs(pub))
	}

	if _, err := q.GetPublishedBlogPostBySlug(ctx, "second"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("draft visible by slug: err = %v", err)
	}
	if _, err := q.GetBlogPostBySlug(ctx, "second"); err != nil {
		t.Errorf("GetBlogPostBySlug(draft): %v", err)
	}

	_, err = q.CreateBlogPost(ctx, CreateBlogPostParams{ID: "dup", Slug: "first", CreatedAt: base, UpdatedAt: base})
	if err == nil {
		t.Error("expected UNIQUE constraint error on duplicate slug")
	}
}

func TestBlogPostPublishedAt(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	createPost(t, q, "p1", "post", false, base)

	params := UpdateBlogPostParams{TitleEn: ns("Post"), Slug: "post", Published: true, UpdatedAt: base.Add(time.Hour), ID: "p1"}
	post, err := q.UpdateBlogPost(ctx, params)
	if err != nil {
		t.Fatalf("UpdateBlogPost(publish): %v", err)
	}
	if !post.PublishedAt.Valid || !post.PublishedAt.Time.Equal(base.Add(time.Hour)) {
		t.Fatalf("PublishedAt = %v, want %v", post.PublishedAt, base.Add(time.Hour))
	}

	// Editing a published post keeps the original publish time.
	params.UpdatedAt = base.Add(2 * time.Hour)
	params.TitleEn = ns("Post edited")
	post, err = q.UpdateBlogPost(ctx, params)
	if err != nil {
		t.Fatalf("UpdateBlogPost(edit): %v", err)
	}
	if !post.PublishedAt.Time.Equal(base.Add(time.Hour)) {
		t.Errorf("PublishedAt changed on edit: %v", post.PublishedAt.Time)
	}
	if !post.UpdatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("UpdatedAt = %v", post.UpdatedAt)
	}

	params.Published = false
	post, err = q.UpdateBlogPost(ctx, params)
	if err != nil {
		t.Fatalf("UpdateBlogPost(unpublish): %v", err)
	}
	if post.PublishedAt.Valid {
		t.Error("PublishedAt should be cleared on unpublish")
	}

	toggleAt := base.Add(3 * time.Hour)
	post, err = q.ToggleBlogPostPublished(ctx, ToggleBlogPostPublishedParams{
		PublishedAt: sql.NullTime{Time: toggleAt, Valid: true}, ID: "p1",
	})
	if err != nil {
		t.Fatalf("ToggleBlogPostPublished: %v", err)
	}
	if !post.Published || !post.PublishedAt.Time.Equal(toggleAt) {
		t.Errorf("after toggle on: published=%v at=%v", post.Published, post.PublishedAt)
	}

	post, err = q.ToggleBlogPostPublished(ctx, ToggleBlogPostPublishedParams{
		PublishedAt: sql.NullTime{Time: toggleAt.Add(time.Hour), Valid: true}, ID: "p1",
	})
	if err != nil {
		t.Fatalf("ToggleBlogPostPublished: %v", err)
	}
	if post.Published || post.PublishedAt.Valid {
		t.Errorf("after toggle off: published=%v at=%v", post.Published, post.PublishedAt)
	}
	if !post.UpdatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("toggle touched UpdatedAt: %v", post.UpdatedAt)
	}

	if _, err := q.ToggleBlogPostPublished(ctx, ToggleBlogPostPublishedParams{ID: "missing"}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Toggle(missing) err = %v, want sql.ErrNoRows", err)
	}
}

func postIDs(posts []BlogPost) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProducts(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		created := base.Add(time.Duration(i) * time.Hour)
		if _, err := q.CreateProduct(ctx, CreateProductParams{
			ID: id, NameEn: ns("Product " + id), Slug: "product-" + id, Price: 199000,
			Currency: "VND", ProductType: "course", Published: id != "b",
			CreatedAt: created, UpdatedAt: created,
		}); err != nil {
			t.Fatalf("CreateProduct(%s): %v", id, err)
		}
	}

	pub, err := q.ListPublishedProducts(ctx)
	if err != nil {
		t.Fatalf("ListPublishedProducts: %v", err)
	}
	if len(pub) != 2 || pub[0].ID != "c" || pub[1].ID != "a" {
		t.Errorf("ListPublishedProducts wrong: %d items", len(pub))
	}

	p, err := q.ToggleProductPublished(ctx, "b")
	if err != nil {
		t.Fatalf("ToggleProductPublished: %v", err)
	}
	if !p.Published {
		t.Error("product b should be published after toggle")
	}
	if !p.UpdatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("toggle touched UpdatedAt: %v", p.UpdatedAt)
	}

	if _, err := q.GetPublishedProductBySlug(ctx, "product-b"); err != nil {
		t.Errorf("GetPublishedProductBySlug after toggle: %v", err)
	}

	_, err = q.CreateProduct(ctx, CreateProductParams{
		ID: "bad", Slug: "bad", Currency: "VND", ProductType: "video", CreatedAt: base, UpdatedAt: base,
	})
	if err == nil {
		t.Error("expected CHECK constraint error for unknown product type")
	}

	updated, err := q.UpdateProduct(ctx, UpdateProductParams{
		NameEn: ns("Renamed"), Slug: "product-a", Price: 9.5, Currency: "USD",
		FileUrl: ns("https://files.example.com/a.pdf"), ProductType: "ebook",
		Published: true, UpdatedAt: base.Add(5 * time.Hour), ID: "a",
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Price != 9.5 || updated.Currency != "USD" || updated.FileUrl.String == "" {
		t.Errorf("UpdateProduct = %+v", updated)
	}
}

func TestUpsertSiteContent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	first, err := q.UpsertSiteContent(ctx, UpsertSiteContentParams{
		ID: "c1", Key: "hero_title", ValueEn: ns("Hello"), CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("UpsertSiteContent(insert): %v", err)
	}

	second, err := q.UpsertSiteContent(ctx, UpsertSiteContentParams{
		ID: "c2", Key: "hero_title", ValueEn: ns("Hi"), ValueVn: ns("Xin chào"),
		CreatedAt: now.Add(time.Minute), UpdatedAt: now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("UpsertSiteContent(update): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: %s != %s", second.ID, first.ID)
	}
	if second.ValueEn.String != "Hi" || second.ValueVn.String != "Xin chào" {
		t.Errorf("values = %+v", second)
	}

	rows, err := q.ListSiteContent(ctx)
	if err != nil {
		t.Fatalf("ListSiteContent: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1", len(rows))
	}

	if _, err := q.GetSiteContentByKey(ctx, "about_title"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetSiteContentByKey(missing) err = %v", err)
	}
}

func TestEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := range 5 {
		if _, err := q.CreateEvent(ctx, CreateEventParams{
			Level: "info", Category: "system", Message: "tick", Metadata: "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	recent, err := q.ListRecentEvents(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(recent) != 3 || !recent[0].CreatedAt.Equal(base.Add(4*time.Hour)) {
		t.Errorf("ListRecentEvents = %+v", recent)
	}

	if err := q.DeleteEventsBefore(ctx, base.Add(2*time.Hour)); err != nil {
		t.Fatalf("DeleteEventsBefore: %v", err)
	}
	recent, _ = q.ListRecentEvents(ctx, 10)
	if len(recent) != 3 {
		t.Errorf("after cleanup len = %d, want 3", len(recent))
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db, AdminSeed{Email: "owner@example.com", Password: "s3cret-passphrase"}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Second run is a no-op.
	if err := Seed(ctx, db, AdminSeed{Email: "owner@example.com", Password: "other"}); err != nil {
		t.Fatalf("Seed again: %v", err)
	}

	q := New(db)
	user, err := q.GetUserByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.Name != DefaultAdminName {
		t.Errorf("Name = %q, want %q", user.Name, DefaultAdminName)
	}

	roles, err := q.ListUserRoles(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListUserRoles: %v", err)
	}
	if len(roles) != 1 || roles[0].Role != "admin" {
		t.Errorf("roles = %+v, want single admin role", roles)
	}

	count, _ := q.CountUsers(ctx)
	if count != 1 {
		t.Errorf("CountUsers = %d, want 1", count)
	}
}
