// Package pageutil extracts pagination information from Link headers.
package pageutil

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/devon-mar/linkhdr/linkhdr"
)

const (
	RelNext  = "next"
	RelPrev  = "prev"
	RelFirst = "first"
	RelLast  = "last"

	DefaultPageParam   = "page"
	DefaultCursorParam = "cursor"
)

// Next returns the next link or nil if linkHdr is empty or has no next link.
func Next(linkHdr string) (*linkhdr.Link, error) {
	return NextWith(nil, linkHdr)
}

// NextWith is like Next but uses p. A nil p uses the default parser.
func NextWith(p *linkhdr.Parser, linkHdr string) (*linkhdr.Link, error) {
	if linkHdr == "" {
		return nil, nil
	}
	if p == nil {
		p = linkhdr.New(nil)
	}
	links, err := p.Parse(linkHdr)
	if err != nil {
		return nil, err
	}
	next, _ := links.Get(RelNext)
	return next, nil
}

// NextPage returns the page number of the next link, or 0 if there is none.
func NextPage(linkHdr string, param string) int {
	next, err := Next(linkHdr)
	if err != nil || next == nil {
		return 0
	}
	page, _ := strconv.Atoi(next.Query(param))
	return page
}

// NextCursor returns the (escaped) cursor of the next link, or "" if there is none.
func NextCursor(linkHdr string, param string) string {
	next, err := Next(linkHdr)
	if err != nil {
		return ""
	}
	return next.Query(param)
}

// ResolveNext returns the next link resolved against base.
// Returns nil if there is no next link.
func ResolveNext(base *url.URL, linkHdr string) (*url.URL, error) {
	next, err := Next(linkHdr)
	if err != nil {
		return nil, fmt.Errorf("error parsing link header: %w", err)
	}
	if next == nil {
		return nil, nil
	}
	return next.ResolveReference(base), nil
}
