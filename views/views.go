// Package views renders the site's pages as templ components. The .templ
// sources are compiled to the _templ.go files next to them; run
// "go generate ./views" after editing a template.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

import (
	"sort"
	"strconv"
	"strings"
)

// Image widths served by the resize endpoint.
var ImageWidths = []int{480, 960, 1440}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ImageVariant maps a /public/ image path to its resized variant. Other
// paths are returned unchanged.
func ImageVariant(src string, width int) string {
	rest, ok := strings.CutPrefix(src, "/public/")
	if !ok {
		return src
	}
	return "/images/" + strconv.Itoa(width) + "/" + rest
}

func srcset(src string) string {
	if !strings.HasPrefix(src, "/public/") {
		return ""
	}
	parts := make([]string, 0, len(ImageWidths))
	for _, w := range ImageWidths {
		parts = append(parts, ImageVariant(src, w)+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(parts, ", ")
}
