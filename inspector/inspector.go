package inspector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devon-mar/linkhdr/linkhdr"
	"github.com/devon-mar/linkhdr/utils/pageutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

type Inspector struct {
	parser     *linkhdr.Parser
	requireRel bool
	pagination paginationConfig
}

// Report is the result of inspecting a single header.
type Report struct {
	Header string   `json:"header" yaml:"header"`
	Links  []*Entry `json:"links" yaml:"links"`
}

type Entry struct {
	// nil when the link has no rel parameter
	Rel     *string           `json:"rel,omitempty" yaml:"rel,omitempty"`
	URI     string            `json:"uri" yaml:"uri"`
	Queries map[string]string `json:"queries,omitempty" yaml:"queries,omitempty"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

type NextInfo struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Page   int    `json:"page,omitempty" yaml:"page,omitempty"`
	Cursor string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
}

func NewInspector(config *Config) (*Inspector, error) {
	r, err := newResolver(config.Resolver.Type, config.Resolver.Config)
	if err != nil {
		return nil, fmt.Errorf("error initializing resolver: %w", err)
	}
	return &Inspector{
		parser:     linkhdr.New(r),
		requireRel: config.RequireRel,
		pagination: config.Pagination,
	}, nil
}

func ValidateConfig(c *Config) error {
	_, err := NewInspector(c)
	return err
}

// Inspect parses hdr and returns its links sorted by relation.
// Links without a relation are sorted last.
func (i *Inspector) Inspect(hdr string, logger *log.Entry) (*Report, error) {
	r := &Report{Header: hdr}

	if i.requireRel {
		links, err := i.parser.ParseWithRel(hdr)
		if err != nil {
			return nil, fmt.Errorf("error parsing header: %w", err)
		}
		for rel, l := range links {
			r.Links = append(r.Links, newEntry(linkhdr.RelOf(rel), l))
		}
	} else {
		links, err := i.parser.Parse(hdr)
		if err != nil {
			return nil, fmt.Errorf("error parsing header: %w", err)
		}
		if _, ok := links[linkhdr.NoRel]; ok {
			logger.Debug("Header has a link without a relation")
		}
		for rel, l := range links {
			r.Links = append(r.Links, newEntry(rel, l))
		}
	}

	slices.SortFunc(r.Links, compareEntries)
	logger.Debugf("Parsed %d links", len(r.Links))
	return r, nil
}

// Next returns information about the next link of hdr.
// The returned NextInfo is empty if there is no next link.
func (i *Inspector) Next(hdr string, logger *log.Entry) (*NextInfo, error) {
	next, err := pageutil.NextWith(i.parser, hdr)
	if err != nil {
		return nil, fmt.Errorf("error parsing header: %w", err)
	}
	if next == nil {
		logger.Debug("No next link")
		return &NextInfo{}, nil
	}

	info := &NextInfo{
		URL:    next.ResolveReference(i.pagination.baseURL).String(),
		Cursor: next.Query(i.pagination.CursorParam),
	}
	if p := next.Query(i.pagination.PageParam); p != "" {
		info.Page, err = strconv.Atoi(p)
		if err != nil {
			logger.WithError(err).Warnf("Ignoring invalid page %q", p)
		}
	}
	return info, nil
}

func newEntry(rel linkhdr.Rel, l *linkhdr.Link) *Entry {
	e := &Entry{URI: l.RawURI}
	if rel.Valid {
		name := rel.Name
		e.Rel = &name
	}
	if len(l.Queries) > 0 {
		e.Queries = l.Queries
	}
	if len(l.Params) > 0 {
		e.Params = l.Params
	}
	return e
}

func compareEntries(a, b *Entry) int {
	switch {
	case a.Rel == nil && b.Rel == nil:
		return strings.Compare(a.URI, b.URI)
	case a.Rel == nil:
		return 1
	case b.Rel == nil:
		return -1
	}
	return strings.Compare(*a.Rel, *b.Rel)
}
