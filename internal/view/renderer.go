package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-storefront/internal/config"
)

//go:embed templates
var templateFS embed.FS

// ページ名
const (
	PageEvent        = "event"
	PageHome         = "home"
	PageNotFound     = "not_found"
	PageError        = "error"
	PageUnconfigured = "unconfigured"
)

// Page はレイアウトに渡すページデータ
type Page struct {
	Data any
}

// layoutData はベースレイアウトのテンプレートデータ
type layoutData struct {
	Site  *config.SiteConfig
	Shell bool
	Data  any
}

// Renderer はテンプレートでHTMLを生成する。echo.Renderer を満たす
type Renderer struct {
	site  *config.SiteConfig
	pages map[string]*template.Template
}

// NewRenderer は埋め込みテンプレートを解析する
func NewRenderer(site *config.SiteConfig) (*Renderer, error) {
	if site == nil {
		site = config.DefaultSite()
	}

	base, err := template.New("base").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/layout/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("レイアウトの解析に失敗しました: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("テンプレート %s の解析に失敗しました: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{site: site, pages: pages}, nil
}

// Site はレイアウトに使うサイト設定を返す
func (r *Renderer) Site() *config.SiteConfig {
	return r.site
}

// RenderPage は name のページを w に書き出す
func (r *Renderer) RenderPage(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("テンプレート %q が見つかりません", name)
	}
	if p, ok := data.(Page); ok {
		data = p.Data
	}
	return t.ExecuteTemplate(w, "base", layoutData{
		Site:  r.site,
		Shell: name != PageUnconfigured,
		Data:  data,
	})
}

// RenderBytes はページをバイト列として返す。事前描画でキャッシュに保存する際に使う
func (r *Renderer) RenderBytes(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render は echo.Renderer の実装
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.RenderPage(w, name, data)
}

var _ echo.Renderer = (*Renderer)(nil)
