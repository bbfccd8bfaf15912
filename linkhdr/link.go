package linkhdr

import "net/url"

// Link is a single entry of a Link header.
type Link struct {
	URI *url.URL
	// The reference as it appeared in the header, without the angle brackets.
	RawURI string
	// Query parameters of URI. Values are not unescaped.
	Queries map[string]string
	// Link parameters, including rel.
	Params map[string]string
}

// Rel is the key of Links.
// The zero value, NoRel, is used for entries without a rel parameter and is
// different from RelOf("").
type Rel struct {
	Name  string
	Valid bool
}

// NoRel is the key for entries without a rel parameter.
var NoRel = Rel{}

func RelOf(name string) Rel {
	return Rel{Name: name, Valid: true}
}

func (r Rel) String() string {
	if !r.Valid {
		return "<none>"
	}
	return r.Name
}

type Links map[Rel]*Link

// Get returns the link with the given relation.
func (l Links) Get(rel string) (*Link, bool) {
	link, ok := l[RelOf(rel)]
	return link, ok
}

// Query returns the query parameter key of the link's reference.
func (l *Link) Query(key string) string {
	if l == nil {
		return ""
	}
	return l.Queries[key]
}

// ResolveReference resolves the link against base.
// A nil base returns a copy of URI.
func (l *Link) ResolveReference(base *url.URL) *url.URL {
	if base == nil {
		u := *l.URI
		return &u
	}
	return base.ResolveReference(l.URI)
}
