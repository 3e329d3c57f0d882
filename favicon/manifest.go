package favicon

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the file written when Config.Manifest is set.
const ManifestName = "site.webmanifest"

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

// WriteManifest writes a web app manifest listing the PNG results of at
// least 192px, as Android expects.
func WriteManifest(dir, name string, results []Result) (string, error) {
	m := webManifest{
		Name:            name,
		ShortName:       name,
		Icons:           []manifestIcon{},
		ThemeColor:      "#ffffff",
		BackgroundColor: "#ffffff",
		Display:         "standalone",
	}
	for _, r := range results {
		if r.Output.Format != PNG || r.Output.Size < 192 || isAppleTouch(r.Output.Name) {
			continue
		}
		m.Icons = append(m.Icons, manifestIcon{
			Src:   "/" + r.Output.Name,
			Sizes: fmt.Sprintf("%dx%d", r.Output.Size, r.Output.Size),
			Type:  "image/png",
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", &Error{Op: "write", Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return path, nil
}

// HTMLSnippet returns the <link> tags for the results. Each href carries a
// version query derived from the file's ETag so browsers refetch changed
// icons. manifest, when non-empty, is linked as the web app manifest.
func HTMLSnippet(results []Result, manifest string) string {
	var b strings.Builder
	for _, r := range results {
		o := r.Output
		href := html.EscapeString(fmt.Sprintf("/%s?v=%s", o.Name, version(r.ETag)))
		size := fmt.Sprintf("%dx%d", o.Size, o.Size)
		switch {
		case o.Format == ICO:
			fmt.Fprintf(&b, "<link rel=\"icon\" href=\"%s\" sizes=\"%s\">\n", href, icoSizes(o))
		case isAppleTouch(o.Name):
			fmt.Fprintf(&b, "<link rel=\"apple-touch-icon\" sizes=\"%s\" href=\"%s\">\n", size, href)
		case manifest != "" && o.Size >= 192:
			// listed in the manifest
		default:
			fmt.Fprintf(&b, "<link rel=\"icon\" type=\"image/png\" sizes=\"%s\" href=\"%s\">\n", size, href)
		}
	}
	if manifest != "" {
		fmt.Fprintf(&b, "<link rel=\"manifest\" href=\"/%s\">\n", html.EscapeString(manifest))
	}
	return b.String()
}

func isAppleTouch(name string) bool {
	return strings.HasPrefix(name, "apple-touch-icon")
}

func icoSizes(o Output) string {
	sizes := o.Sizes()
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%dx%d", s, s)
	}
	return strings.Join(parts, " ")
}

// version shortens an entity tag such as W/"1234-abcdef..." to a token that
// is safe in a query string.
func version(tag string) string {
	tag = strings.TrimPrefix(tag, "W/")
	tag = strings.Trim(tag, `"`)
	if i := strings.LastIndexByte(tag, '-'); i >= 0 {
		tag = tag[i+1:]
	}
	if len(tag) > 10 {
		tag = tag[:10]
	}
	return tag
}
