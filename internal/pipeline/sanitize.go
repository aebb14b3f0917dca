package pipeline

import (
	"regexp"
	"sort"

	"github.com/microcosm-cc/bluemonday"
)

// GlobalAttributes is the AllowList.Attributes key for attributes allowed on
// every permitted element.
const GlobalAttributes = "*"

// chromaClass matches the class names emitted by goldmark-highlighting and
// goldmark's fenced code renderer ("chroma", "language-go", short token classes).
var chromaClass = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)

// AllowList is the declarative sanitization policy for feed content.
type AllowList struct {
	Tags       []string            `yaml:"tags"`
	Attributes map[string][]string `yaml:"attributes"` // element -> attributes, "*" for all
	Schemes    []string            `yaml:"schemes"`
}

// DefaultAllowList returns the default feed allow-list: common prose,
// list, table and code elements plus images, with links limited to safe schemes.
func DefaultAllowList() AllowList {
	return AllowList{
		Tags: []string{
			"address", "article", "aside", "footer", "header",
			"h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "main", "nav", "section",
			"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure",
			"hr", "li", "ol", "p", "pre", "ul",
			"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "del", "dfn",
			"em", "i", "kbd", "mark", "q", "rb", "rp", "rt", "rtc", "ruby",
			"s", "samp", "small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr",
			"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
			"img",
		},
		Attributes: map[string][]string{
			"a":   {"href", "name", "target", "title"},
			"img": {"src", "alt", "title", "width", "height"},
			"li":  {"id"},
			"sup": {"id"},
		},
		Schemes: []string{"http", "https", "ftp", "mailto", "tel"},
	}
}

// Sanitizer strips everything outside an AllowList from rendered HTML.
// A Sanitizer is safe for concurrent use once constructed.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a bluemonday policy from list.
// Script and style elements are dropped together with their content.
func NewSanitizer(list AllowList) *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(list.Tags...)

	// Deterministic policy construction: iterate element names in order.
	elems := make([]string, 0, len(list.Attributes))
	for elem := range list.Attributes {
		elems = append(elems, elem)
	}
	sort.Strings(elems)

	for _, elem := range elems {
		attrs := list.Attributes[elem]
		if len(attrs) == 0 {
			continue
		}
		if elem == GlobalAttributes {
			p.AllowAttrs(attrs...).Globally()
			continue
		}
		p.AllowAttrs(attrs...).OnElements(elem)
	}

	// Highlighted code carries class names only; inline styles never pass.
	p.AllowAttrs("class").Matching(chromaClass).OnElements("pre", "code", "span")

	p.AllowURLSchemes(list.Schemes...)
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return &Sanitizer{policy: p}
}

// Sanitize returns the allow-listed subset of htmlContent.
func (s *Sanitizer) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}
