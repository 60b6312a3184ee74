// Copyright (c) 2026 Bookvault. All rights reserved.

// Package keypath derives object-store keys and public CDN URLs for
// uploaded book assets.
//
// # Key Layout
//
// Every asset lives under "books/{sanitized-title}/{uuid}{.ext}". The title
// segment groups a book's file and cover under one prefix; the random UUID
// keeps repeated uploads of the same title from colliding.
package keypath

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const prefix = "books/"

var (
	// whitespaceRuns matches any run of Unicode whitespace.
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Object is a derived storage location for one uploaded asset.
type Object struct {
	// Key is the bucket-relative object key the asset is written under.
	Key string
	// URL is the public address the asset is served from via the CDN.
	URL string
}

// Sanitize converts a raw book title into the key segment used for its assets.
//
// The title is NFC-normalized, trimmed, whitespace runs become single hyphens,
// and hyphen runs are collapsed. Unicode letters survive: sanitization only
// removes separators, it does not transliterate.
func Sanitize(title string) string {
	segment := norm.NFC.String(title)
	segment = strings.TrimSpace(segment)
	segment = whitespaceRuns.ReplaceAllString(segment, "-")
	segment = multiHyphen.ReplaceAllString(segment, "-")
	return segment
}

// Derive computes the object key and public URL for a single uploaded file.
//
// # Parameters
//   - cdnHost: Public host fronting the bucket (e.g. "cdn.bookvault.app").
//   - title: Raw book title; sanitized into the shared key segment.
//   - filename: Client-supplied filename; only its extension is kept.
//
// A filename without a dot yields a key with no extension suffix. The URL
// percent-encodes the title segment so Unicode and reserved characters
// survive in browsers; the key keeps the raw sanitized form.
func Derive(cdnHost, title, filename string) Object {
	segment := Sanitize(title)
	id := uuid.NewString()

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx:]
	}

	return Object{
		Key: prefix + segment + "/" + id + ext,
		URL: "https://" + cdnHost + "/" + prefix + url.PathEscape(segment) + "/" + id + ext,
	}
}
