package view

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

const (
	wixMediaBase   = "https://static.wixstatic.com/media/"
	wixImageScheme = "wix:image://v1/"
)

// MediaImageURL はWixの静的メディアURLを指定サイズで返す
// img が nil または参照を持たない場合は placeholder を返す
func MediaImageURL(img *event.Image, width, height int, placeholder string) string {
	if img == nil {
		return placeholder
	}
	id := img.ID
	if id == "" {
		id = mediaID(img.URL)
	}
	if id == "" {
		if isHTTP(img.URL) {
			return img.URL
		}
		return placeholder
	}
	escaped := url.PathEscape(id)
	return fmt.Sprintf("%s%s/v1/fill/w_%d,h_%d,al_c,q_80,enc_auto/%s", wixMediaBase, escaped, width, height, escaped)
}

// MediaImage は遅延読み込みの <img> 要素を返す
func MediaImage(img *event.Image, width, height int, class, placeholder string) template.HTML {
	alt := ""
	if img != nil {
		alt = img.Alt
	}
	src := MediaImageURL(img, width, height, placeholder)

	return template.HTML(fmt.Sprintf(
		`<img src="%s" width="%d" height="%d" alt="%s" class="%s" loading="lazy" style="object-fit:cover;width:100%%">`,
		template.HTMLEscapeString(src), width, height,
		template.HTMLEscapeString(alt), template.HTMLEscapeString(class),
	))
}

// mediaID は "wix:image://v1/<id>/<name>#..." または静的メディアURLからIDを取り出す
func mediaID(raw string) string {
	switch {
	case strings.HasPrefix(raw, wixImageScheme):
		rest := strings.TrimPrefix(raw, wixImageScheme)
		if i := strings.IndexAny(rest, "/#"); i >= 0 {
			rest = rest[:i]
		}
		return rest
	case strings.HasPrefix(raw, wixMediaBase):
		rest := strings.TrimPrefix(raw, wixMediaBase)
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			rest = rest[:i]
		}
		return rest
	default:
		return ""
	}
}

func isHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
