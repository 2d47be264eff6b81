// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// BlogService manages blog posts.
type BlogService struct {
	queries *store.Queries
	now     Clock
}

// NewBlogService creates a new BlogService.
func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// List returns every post, newest first.
func (s *BlogService) List(ctx context.Context) ([]store.BlogPost, error) {
	return s.queries.ListBlogPosts(ctx)
}

// ListPublished returns published posts, most recently published first.
func (s *BlogService) ListPublished(ctx context.Context) ([]store.BlogPost, error) {
	return s.queries.ListPublishedBlogPosts(ctx)
}

// Get returns one post or ErrNotFound.
func (s *BlogService) Get(ctx context.Context, id string) (store.BlogPost, error) {
	row, err := s.queries.GetBlogPostByID(ctx, id)
	return row, notFound(err)
}

// GetBySlug returns a post by slug regardless of its published state.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (store.BlogPost, error) {
	row, err := s.queries.GetBlogPostBySlug(ctx, slug)
	return row, notFound(err)
}

// GetPublishedBySlug returns a published post by slug. Drafts are ErrNotFound.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (store.BlogPost, error) {
	row, err := s.queries.GetPublishedBlogPostBySlug(ctx, slug)
	return row, notFound(err)
}

// Upsert inserts a new draft or updates the row of an existing one.
// A new post without a slug gets one derived from its English title.
// published_at is set when a post becomes published, kept while it stays
// published and cleared when it is unpublished.
func (s *BlogService) Upsert(ctx context.Context, d model.Draft[model.BlogPostFields]) (store.BlogPost, error) {
	f := d.Fields().Trimmed()
	_, isNew := d.(model.NewDraft[model.BlogPostFields])
	f.Slug = model.PrepareSlug(f.Slug, f.TitleEN, isNew)
	if err := f.Validate(); err != nil {
		return store.BlogPost{}, err
	}

	now := s.now()
	switch d := d.(type) {
	case model.NewDraft[model.BlogPostFields]:
		var publishedAt sql.NullTime
		if f.Published {
			publishedAt = sql.NullTime{Time: now, Valid: true}
		}
		row, err := s.queries.CreateBlogPost(ctx, store.CreateBlogPostParams{
			ID:          uuid.NewString(),
			TitleEn:     util.NullStringFromValue(f.TitleEN),
			TitleVn:     util.NullStringFromValue(f.TitleVN),
			Slug:        f.Slug,
			ExcerptEn:   util.NullStringFromValue(f.ExcerptEN),
			ExcerptVn:   util.NullStringFromValue(f.ExcerptVN),
			ContentEn:   util.NullStringFromValue(f.ContentEN),
			ContentVn:   util.NullStringFromValue(f.ContentVN),
			CoverImage:  util.NullStringFromValue(f.CoverImage),
			Published:   f.Published,
			PublishedAt: publishedAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if isUniqueViolation(err) {
			return store.BlogPost{}, ErrSlugTaken
		}
		if err != nil {
			return store.BlogPost{}, fmt.Errorf("creating blog post: %w", err)
		}
		return row, nil
	case model.ExistingDraft[model.BlogPostFields]:
		row, err := s.queries.UpdateBlogPost(ctx, store.UpdateBlogPostParams{
			TitleEn:    util.NullStringFromValue(f.TitleEN),
			TitleVn:    util.NullStringFromValue(f.TitleVN),
			Slug:       f.Slug,
			ExcerptEn:  util.NullStringFromValue(f.ExcerptEN),
			ExcerptVn:  util.NullStringFromValue(f.ExcerptVN),
			ContentEn:  util.NullStringFromValue(f.ContentEN),
			ContentVn:  util.NullStringFromValue(f.ContentVN),
			CoverImage: util.NullStringFromValue(f.CoverImage),
			Published:  f.Published,
			UpdatedAt:  now,
			ID:         d.ID,
		})
		if isUniqueViolation(err) {
			return store.BlogPost{}, ErrSlugTaken
		}
		if err != nil {
			return store.BlogPost{}, fmt.Errorf("updating blog post %s: %w", d.ID, notFound(err))
		}
		return row, nil
	}
	return store.BlogPost{}, fmt.Errorf("unsupported draft %T", d)
}

// TogglePublish flips the published flag, stamping published_at with the
// current time when publishing and clearing it when unpublishing.
func (s *BlogService) TogglePublish(ctx context.Context, id string) (store.BlogPost, error) {
	row, err := s.queries.ToggleBlogPostPublished(ctx, store.ToggleBlogPostPublishedParams{
		PublishedAt: util.NullTimeFromValue(s.now()),
		ID:          id,
	})
	if err != nil {
		return store.BlogPost{}, fmt.Errorf("toggling blog post %s: %w", id, notFound(err))
	}
	return row, nil
}

// Delete removes a post. A missing id is not an error.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.queries.DeleteBlogPost(ctx, id); err != nil {
		return fmt.Errorf("deleting blog post %s: %w", id, err)
	}
	return nil
}

// Count returns the number of posts.
func (s *BlogService) Count(ctx context.Context) (int64, error) {
	return s.queries.CountBlogPosts(ctx)
}

// RowID returns the identifier of row.
func (s *BlogService) RowID(row store.BlogPost) string { return row.ID }

// Blank returns the fields of an empty create dialog.
func (s *BlogService) Blank() model.BlogPostFields {
	return model.BlogPostFields{}
}

// EditDraft copies row into a draft.
func (s *BlogService) EditDraft(row store.BlogPost) model.Draft[model.BlogPostFields] {
	return model.Existing(row.ID, model.BlogPostFields{
		TitleEN:    util.StringFromNull(row.TitleEn),
		TitleVN:    util.StringFromNull(row.TitleVn),
		Slug:       row.Slug,
		ExcerptEN:  util.StringFromNull(row.ExcerptEn),
		ExcerptVN:  util.StringFromNull(row.ExcerptVn),
		ContentEN:  util.StringFromNull(row.ContentEn),
		ContentVN:  util.StringFromNull(row.ContentVn),
		CoverImage: util.StringFromNull(row.CoverImage),
		Published:  row.Published,
	})
}
