package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched job posting stays fresh
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// GetFreshPage returns the cached page for url if it was fetched within ttl
// and has no recorded fetch error. Returns nil on a cache miss.
func (db *DB) GetFreshPage(ctx context.Context, url string, ttl time.Duration) (*FetchedPage, error) {
	var page FetchedPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, http_status, fetch_error, fetched_at, expires_at
		 FROM fetched_pages
		 WHERE url = $1 AND fetch_error IS NULL AND fetched_at > NOW() - $2::interval`,
		url, ttl.String(),
	).Scan(&page.ID, &page.URL, &page.RawHTML, &page.ParsedText, &page.HTTPStatus,
		&page.FetchError, &page.FetchedAt, &page.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check page cache: %w", err)
	}
	return &page, nil
}

// UpsertPage stores or refreshes a fetched page, keyed by URL
func (db *DB) UpsertPage(ctx context.Context, page *FetchedPage) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO fetched_pages (url, raw_html, parsed_text, http_status, fetch_error, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		 ON CONFLICT (url) DO UPDATE SET
		     raw_html = $2, parsed_text = $3, http_status = $4,
		     fetch_error = $5, fetched_at = NOW(), expires_at = $6
		 RETURNING id, fetched_at`,
		page.URL, page.RawHTML, page.ParsedText, page.HTTPStatus, page.FetchError, page.ExpiresAt,
	).Scan(&page.ID, &page.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert page: %w", err)
	}
	return nil
}

// RecordFailedFetch notes a failed fetch so repeated failures are visible
func (db *DB) RecordFailedFetch(ctx context.Context, url string, httpStatus int, fetchError string) error {
	var status *int
	if httpStatus != 0 {
		status = &httpStatus
	}
	page := &FetchedPage{
		URL:        url,
		HTTPStatus: status,
		FetchError: &fetchError,
	}
	return db.UpsertPage(ctx, page)
}

// InvalidatePage forces a re-fetch of url on next request
func (db *DB) InvalidatePage(ctx context.Context, url string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE fetched_pages SET fetched_at = NOW() - interval '1 year' WHERE url = $1`,
		url,
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate page: %w", err)
	}
	return nil
}
