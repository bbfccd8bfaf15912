package pageutil

import (
	"errors"
	"net/url"
	"testing"

	"github.com/devon-mar/linkhdr/linkhdr"
)

const (
	giteaFirstPage  = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2&state=all>; rel="next",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=20&state=all>; rel="last"`
	giteaMiddlePage = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=3&state=all>; rel="next",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=20&state=all>; rel="last",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="first",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="prev"`
	giteaLastPage   = `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=1&state=all>; rel="first",<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=19&state=all>; rel="prev"`
	registryPage    = `</v2/library/alpine/tags/list?last=2.7&n=2>; rel="next"`
	cursorPage      = `<https://api.example.com/items?&cursor=1:0:1>; rel="next"`
)

func TestNextPage(t *testing.T) {
	tests := map[string]struct {
		linkHdr string
		want    int
	}{
		"first page":  {linkHdr: giteaFirstPage, want: 2},
		"middle page": {linkHdr: giteaMiddlePage, want: 3},
		"last page":   {linkHdr: giteaLastPage, want: 0},
		"empty":       {linkHdr: "", want: 0},
		"invalid":     {linkHdr: `<:::gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2>; rel="next"`, want: 0},
		"not a number": {
			linkHdr: `<https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=two>; rel="next"`,
			want:    0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := NextPage(tc.linkHdr, DefaultPageParam); have != tc.want {
				t.Errorf("got %d, want %d", have, tc.want)
			}
		})
	}
}

func TestNextCursor(t *testing.T) {
	tests := map[string]struct {
		linkHdr string
		want    string
	}{
		"cursor":    {linkHdr: cursorPage, want: "1:0:1"},
		"no cursor": {linkHdr: giteaFirstPage, want: ""},
		"no next":   {linkHdr: giteaLastPage, want: ""},
		"empty":     {linkHdr: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if have := NextCursor(tc.linkHdr, DefaultCursorParam); have != tc.want {
				t.Errorf("got %q, want %q", have, tc.want)
			}
		})
	}
}

func TestResolveNext(t *testing.T) {
	base, err := url.Parse("https://registry.example.com/v2/library/alpine/tags/list?n=2")
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		base      *url.URL
		linkHdr   string
		want      string
		wantError bool
	}{
		"relative": {
			base:    base,
			linkHdr: registryPage,
			want:    "https://registry.example.com/v2/library/alpine/tags/list?last=2.7&n=2",
		},
		"absolute": {
			base:    base,
			linkHdr: giteaFirstPage,
			want:    "https://gitea.com/api/v1/repos/gitea/go-sdk/issues?page=2&state=all",
		},
		"no base": {
			linkHdr: registryPage,
			want:    "/v2/library/alpine/tags/list?last=2.7&n=2",
		},
		"no next": {
			base:    base,
			linkHdr: giteaLastPage,
		},
		"invalid": {
			base:      base,
			linkHdr:   "<>",
			wantError: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			have, err := ResolveNext(tc.base, tc.linkHdr)
			if err == nil && tc.wantError {
				t.Fatalf("expected an error")
			} else if err != nil && !tc.wantError {
				t.Fatalf("expected no error but got: %v", err)
			}
			if tc.wantError {
				if !errors.Is(err, linkhdr.ErrInvalidReference) {
					t.Errorf("got error %v, want %v", err, linkhdr.ErrInvalidReference)
				}
				return
			}

			var haveStr string
			if have != nil {
				haveStr = have.String()
			}
			if haveStr != tc.want {
				t.Errorf("got %q, want %q", haveStr, tc.want)
			}
		})
	}
}

func TestNextWithAbsolute(t *testing.T) {
	p := linkhdr.New(linkhdr.AbsoluteResolver{})
	if _, err := NextWith(p, registryPage); !errors.Is(err, linkhdr.ErrInvalidReference) {
		t.Errorf("got error %v, want %v", err, linkhdr.ErrInvalidReference)
	}

	next, err := NextWith(p, giteaMiddlePage)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}
	if have := next.Query(DefaultPageParam); have != "3" {
		t.Errorf("got page %q, want %q", have, "3")
	}
}
