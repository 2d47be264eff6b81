// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteAuth is the login route.
	RouteAuth = "/auth"
	// RouteLogout is the logout route.
	RouteLogout = RouteAuth + "/logout"
	// RouteBlog is the public blog listing.
	RouteBlog = "/blog"
	// RouteStore is the public store listing.
	RouteStore = "/store"
	// RouteAdmin is the admin console root.
	RouteAdmin = "/admin"
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteSitemap is the sitemap route.
	RouteSitemap = "/sitemap.xml"
	// RouteRobots is the robots.txt route.
	RouteRobots = "/robots.txt"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteContent is the site content admin route.
	RouteContent = "/content"
	// RouteExperiences is the experiences admin route.
	RouteExperiences = "/experiences"
	// RouteEducation is the education admin route.
	RouteEducation = "/education"
	// RouteAdminBlog is the blog admin route.
	RouteAdminBlog = "/blog"
	// RouteProducts is the products admin route.
	RouteProducts = "/products"

	// RouteSuffixSave is the suffix for dialog submissions.
	RouteSuffixSave = "/save"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"
	// RouteSuffixToggle is the suffix for publish toggle routes.
	RouteSuffixToggle = "/toggle"
)

const (
	redirectAdmin        = RouteAdmin
	redirectAdminContent = RouteAdmin + RouteContent
	redirectLogin        = RouteAuth
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"

// recentEventsLimit is the number of events shown on the dashboard.
const recentEventsLimit = 10
