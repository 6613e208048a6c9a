package axiar

import (
	"strings"
	"unicode"

	"github.com/beevik/etree"
)

// Response root elements recognized by the parser, in lookup order. The
// gateway answers transaction posts with <response>, 3-D Secure
// completion posts with <tds_response>, and rejects with <error>.
var responseRoots = []string{"response", "tds_response", "error"}

// parseResponse flattens the gateway XML into a field map. The subtree
// under the first recognized root is walked recursively: leaf elements
// contribute one entry each keyed by their normalized tag name, non-leaf
// elements are structural only. Leaves sharing a tag name at different
// depths collide and the last one visited wins — the wire format offers
// no disambiguation, so the normalizer only projects out fields that are
// unambiguous in practice.
func parseResponse(body []byte) (map[string]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &ParseError{Reason: "invalid XML: " + err.Error(), Body: body}
	}

	var root *etree.Element
	for _, name := range responseRoots {
		if root = doc.FindElement("//" + name); root != nil {
			break
		}
	}
	if root == nil {
		return nil, &ParseError{Reason: "no response, tds_response or error element", Body: body}
	}

	fields := make(map[string]string)
	for _, child := range root.ChildElements() {
		flattenElement(fields, child)
	}
	return fields, nil
}

func flattenElement(fields map[string]string, el *etree.Element) {
	children := el.ChildElements()
	if len(children) == 0 {
		fields[normalizeTag(el.Tag)] = strings.TrimSpace(el.Text())
		return
	}
	for _, child := range children {
		flattenElement(fields, child)
	}
}

// normalizeTag lower-cases a tag name with underscore word separation,
// so CamelCase variants land on the same key as the usual snake_case
// tags (RedirectURL -> redirect_url, trx_id -> trx_id).
func normalizeTag(tag string) string {
	runes := []rune(tag)
	var b strings.Builder
	b.Grow(len(tag) + 2)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			startsWord := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && startsWord) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
