package linkhdr

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/exp/slices"
)

// Resolver parses the reference of a link entry.
type Resolver interface {
	Resolve(ref string) (*url.URL, error)
}

var errEmptyReference = errors.New("empty reference")

// ReferenceResolver accepts any URI reference, including relative ones such
// as "/v2/library/alpine/tags/list?n=2".
type ReferenceResolver struct{}

// Resolve implements Resolver
func (ReferenceResolver) Resolve(ref string) (*url.URL, error) {
	if ref == "" {
		return nil, errEmptyReference
	}
	return url.Parse(ref)
}

// AbsoluteResolver only accepts absolute URLs with a host.
type AbsoluteResolver struct {
	// Allowed schemes, lowercase. All schemes are allowed if empty.
	Schemes []string
}

// Resolve implements Resolver
func (r AbsoluteResolver) Resolve(ref string) (*url.URL, error) {
	if ref == "" {
		return nil, errEmptyReference
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%q is not an absolute URL", ref)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%q has no host", ref)
	}
	if len(r.Schemes) > 0 && !slices.Contains(r.Schemes, u.Scheme) {
		return nil, fmt.Errorf("scheme %q is not allowed", u.Scheme)
	}
	return u, nil
}
