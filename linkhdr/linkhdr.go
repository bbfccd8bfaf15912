// Package linkhdr parses HTTP Link headers (RFC 8288) into a map keyed by
// relation type.
//
// The header value is preprocessed by removing every '<', '>', '"' and
// whitespace character before it is split on ',' and ';'. As a result a
// parameter value can not contain a literal quote, comma or semicolon.
package linkhdr

import (
	"errors"
	"iter"
	"regexp"
	"strings"
	"sync"
)

const relParam = "rel"

var stripPattern = sync.OnceValues(func() (*regexp.Regexp, error) {
	return regexp.Compile(`[<>"\s]`)
})

// Parser parses Link headers using a fixed Resolver.
// It is safe for concurrent use.
type Parser struct {
	resolver Resolver
}

// New returns a Parser resolving references with r.
// A nil r uses ReferenceResolver.
func New(r Resolver) *Parser {
	if r == nil {
		r = ReferenceResolver{}
	}
	return &Parser{resolver: r}
}

var defaultParser = New(ReferenceResolver{})

// Parse parses hdr with the default parser. See (*Parser).Parse.
func Parse(hdr string) (Links, error) {
	return defaultParser.Parse(hdr)
}

// ParseWithRel parses hdr with the default parser. See (*Parser).ParseWithRel.
func ParseWithRel(hdr string) (map[string]*Link, error) {
	return defaultParser.ParseWithRel(hdr)
}

// Parse parses hdr. Entries without a rel parameter are stored under NoRel.
//
// When more than one entry has the same relation the last one wins.
// An empty hdr is not a valid header and returns ErrInvalidReference.
func (p *Parser) Parse(hdr string) (Links, error) {
	return parse(p, hdr, func(rel string, ok bool) (Rel, error) {
		if !ok {
			return NoRel, nil
		}
		return RelOf(rel), nil
	})
}

// ParseWithRel is like Parse but every entry must have a rel parameter.
// ErrMissingRel is returned otherwise.
func (p *Parser) ParseWithRel(hdr string) (map[string]*Link, error) {
	return parse(p, hdr, func(rel string, ok bool) (string, error) {
		if !ok {
			return "", ErrMissingRel
		}
		return rel, nil
	})
}

func parse[K comparable](p *Parser, hdr string, key func(rel string, ok bool) (K, error)) (map[K]*Link, error) {
	entries, err := splitEntries(hdr)
	if err != nil {
		return nil, err
	}

	ret := make(map[K]*Link)
	for entry := range entries {
		link, err := p.parseEntry(entry)
		if err != nil {
			return nil, err
		}

		rel, ok := link.Params[relParam]
		k, err := key(rel, ok)
		if err != nil {
			return nil, &ParseError{Kind: err, Text: entry}
		}
		ret[k] = link
	}
	return ret, nil
}

// splitEntries removes the header syntax and returns the entries in header order.
func splitEntries(hdr string) (iter.Seq[string], error) {
	re, err := stripPattern()
	if err != nil {
		return nil, &ParseError{Kind: ErrInternal, Text: "strip pattern", Err: err}
	}
	return strings.SplitSeq(re.ReplaceAllString(hdr, ""), ","), nil
}

func (p *Parser) parseEntry(entry string) (*Link, error) {
	fields := strings.Split(entry, ";")
	if len(fields) == 0 {
		return nil, &ParseError{Kind: ErrInternal, Text: entry, Err: errors.New("entry has no fields")}
	}

	params := make(map[string]string, len(fields)-1)
	for _, f := range fields[1:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return nil, &ParseError{Kind: ErrMalformedParam, Text: f}
		}
		params[k] = v
	}

	raw := fields[0]
	u, err := p.resolver.Resolve(raw)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidReference, Text: raw, Err: err}
	}

	queries, err := splitQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}

	return &Link{
		URI:     u,
		RawURI:  raw,
		Queries: queries,
		Params:  params,
	}, nil
}

// splitQuery splits a raw query into key/value pairs. Values are not unescaped.
func splitQuery(q string) (map[string]string, error) {
	ret := map[string]string{}
	// some servers send "?&key=value"
	q = strings.TrimPrefix(q, "&")
	if q == "" {
		return ret, nil
	}
	for _, pair := range strings.Split(q, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, &ParseError{Kind: ErrMalformedQuery, Text: pair}
		}
		ret[k] = v
	}
	return ret, nil
}
