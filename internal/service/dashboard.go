// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/olegiv/folio/internal/store"
)

// DashboardStats holds the row counts shown on the admin dashboard.
type DashboardStats struct {
	Experiences int64
	Education   int64
	BlogPosts   int64
	Products    int64
}

// DashboardService gathers admin dashboard figures.
type DashboardService struct {
	queries *store.Queries
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *sql.DB) *DashboardService {
	return &DashboardService{queries: store.New(db)}
}

// Stats counts the rows of every editable resource.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Experiences, err = s.queries.CountExperiences(ctx); err != nil {
		return stats, fmt.Errorf("counting experiences: %w", err)
	}
	if stats.Education, err = s.queries.CountEducation(ctx); err != nil {
		return stats, fmt.Errorf("counting education: %w", err)
	}
	if stats.BlogPosts, err = s.queries.CountBlogPosts(ctx); err != nil {
		return stats, fmt.Errorf("counting blog posts: %w", err)
	}
	if stats.Products, err = s.queries.CountProducts(ctx); err != nil {
		return stats, fmt.Errorf("counting products: %w", err)
	}
	return stats, nil
}
