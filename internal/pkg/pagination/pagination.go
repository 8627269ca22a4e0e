// Package pagination derives page parameters from request queries and
// renders Link response headers for paginated listings.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultPageSize is used when the request does not specify pageSize.
	DefaultPageSize = 20
	// MaxPageSize caps the pageSize a client may request.
	MaxPageSize = 100
)

// Params describes a single requested page.
type Params struct {
	Page     int
	PageSize int
}

// Values abstracts the request query, matching url.Values.Get.
type Values interface {
	Get(key string) string
}

// FromQuery extracts page/pageSize from the request query. Missing or
// unparseable values fall back to page 1 and defaultSize; pageSize is
// clamped to maxSize.
func FromQuery(query Values, defaultSize, maxSize int) Params {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}

	p := Params{Page: 1, PageSize: defaultSize}
	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			p.Page = page
		}
	}
	if raw := query.Get("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			p.PageSize = size
		}
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset returns the number of rows to skip for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// LastPage computes the highest page number holding data for total rows.
func (p Params) LastPage(total int64) int {
	if total <= 0 {
		return 1
	}
	last := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	if last < 1 {
		last = 1
	}
	return last
}

// LinkHeader builds a Link header value with first/prev/next/last page
// relations for the given base URL. prev and next are present only when
// such pages exist.
func (p Params) LinkHeader(base *url.URL, total int64) string {
	last := p.LastPage(total)

	var links []string
	add := func(page int, rel string) {
		u := *base
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		q.Set("pageSize", strconv.Itoa(p.PageSize))
		u.RawQuery = q.Encode()
		links = append(links, fmt.Sprintf("<%s>; rel=%q", u.String(), rel))
	}

	add(1, "first")
	if p.Page > 1 {
		prev := p.Page - 1
		if prev > last {
			prev = last
		}
		add(prev, "prev")
	}
	if p.Page < last {
		add(p.Page+1, "next")
	}
	add(last, "last")

	return strings.Join(links, ", ")
}
