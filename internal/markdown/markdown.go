// Package markdown renders project long descriptions to HTML.
package markdown

import (
	"bytes"
	"html/template"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const defaultCacheSize = 128

// Renderer converts markdown to HTML and memoizes the result per source text.
// Raw HTML in the source is escaped by goldmark's default (unsafe off).
type Renderer struct {
	md    goldmark.Markdown
	cache *lru.Cache[string, template.HTML]
}

func New(cacheSize int) (*Renderer, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, template.HTML](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		md:    goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
		cache: cache,
	}, nil
}

// Render returns the HTML for src. On a conversion error the source is
// returned escaped.
func (r *Renderer) Render(src string) template.HTML {
	if html, ok := r.cache.Get(src); ok {
		return html
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}

	html := template.HTML(buf.String())
	r.cache.Add(src, html)
	return html
}

func (r *Renderer) Cached() int { return r.cache.Len() }
