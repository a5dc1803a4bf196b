package pattern

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"

	"datefield/internal/locale"
	"datefield/internal/model"
)

// Reference date probed to derive a locale's placeholder.
var referenceDate = time.Date(2017, time.December, 11, 0, 0, 0, 0, time.Local)

var reDigits = regexp.MustCompile(`\d+`)

// Options select what to resolve.
type Options struct {
	Locale    language.Tag
	MaxDetail model.Granularity
	// Format overrides the locale layout verbatim when non-empty. Tokens may
	// repeat in an explicit format.
	Format string
}

// Resolved is a layout ready to render.
type Resolved struct {
	Placeholder string    `json:"placeholder"`
	Divider     string    `json:"divider,omitempty"`
	Elements    []Element `json:"elements"`
}

// Segments returns the segment elements in display order.
func (r Resolved) Segments() []Element {
	var out []Element
	for _, e := range r.Elements {
		if e.IsSegment() {
			out = append(out, e)
		}
	}
	return out
}

// Resolver derives layouts. It owns its formatter cache.
type Resolver struct {
	cache  *Cache
	source func(language.Tag) locale.Formatter
}

// NewResolver returns a resolver probing locale.Numeric. A nil cache gets a
// private one.
func NewResolver(cache *Cache) *Resolver {
	return NewResolverWithSource(cache, locale.Numeric)
}

// NewResolverWithSource probes src instead of the built-in locale tables.
func NewResolverWithSource(cache *Cache, src func(language.Tag) locale.Formatter) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{cache: cache, source: src}
}

// Resolve returns the layout for opts. Oversized tokens fail with a
// *FormatError.
func (r *Resolver) Resolve(opts Options) (Resolved, error) {
	placeholder := opts.Format
	explicit := placeholder != ""
	if !explicit {
		placeholder = r.Placeholder(opts.Locale, opts.MaxDetail)
	}

	elems, err := Parse(placeholder, explicit)
	if err != nil {
		return Resolved{}, err
	}
	out := Resolved{Placeholder: placeholder, Elements: elems}
	if len(out.Segments()) > 1 {
		out.Divider, _ = Divider(placeholder)
	}
	return out, nil
}

// Placeholder formats the reference date for tag at maxDetail and swaps each
// component's digits for its token letter.
//
// A leftover "17" becomes y as well: locales printing a two-digit year would
// otherwise keep the literal digits.
// TODO: the "17" swap also fires on an incidental "17" elsewhere in a
// localized string; revisit once a locale exhibiting it is supported.
func (r *Resolver) Placeholder(tag language.Tag, maxDetail model.Granularity) string {
	fields := locale.Fields{Year: true, Month: maxDetail.ShowsMonth(), Day: maxDetail.ShowsDay()}
	out := r.cache.Get(tag, fields, r.source)(referenceDate)

	pieces := []struct {
		fields locale.Fields
		token  string
	}{
		{locale.Fields{Year: true}, "y"},
		{locale.Fields{Month: true}, "M"},
		{locale.Fields{Day: true}, "d"},
	}
	for _, p := range pieces {
		digits := reDigits.FindString(r.cache.Get(tag, p.fields, r.source)(referenceDate))
		if digits == "" {
			continue
		}
		out = strings.Replace(out, digits, p.token, 1)
	}
	return strings.Replace(out, "17", "y", 1)
}
