package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NavLink はヘッダー・フッターのリンク
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// SiteConfig はレイアウトに表示するサイト情報
type SiteConfig struct {
	Title            string    `yaml:"title"`
	Description      string    `yaml:"description"`
	Icon             string    `yaml:"icon"`
	PlaceholderImage string    `yaml:"placeholder_image"`
	Nav              []NavLink `yaml:"nav"`
	Footer           string    `yaml:"footer"`
	NotPremium       string    `yaml:"not_premium"`
}

// DefaultSite はサイト設定ファイルがない場合の既定値を返す
func DefaultSite() *SiteConfig {
	return &SiteConfig{
		Title:            "Otein - Merchandising",
		Description:      "Página web de Otein",
		Icon:             "https://is1-ssl.mzstatic.com/image/thumb/Music112/v4/d3/be/78/d3be78cd-3165-3a65-0837-3782264a9e62/0.jpg/800x800cc.jpg",
		PlaceholderImage: "https://static.wixstatic.com/media/c837a6_f58e7e7d51d94b3f9b5b4d8bbe4c4e5d~mv2.png",
		Nav: []NavLink{
			{Label: "Inicio", Href: "/"},
			{Label: "Conciertos", Href: "/#events"},
		},
		Footer: "© Otein",
	}
}

// LoadSite はYAMLファイルからサイト設定を読み込む
// path が空の場合は既定値を返す。ファイル内で省略された項目は既定値のまま
func LoadSite(path string) (*SiteConfig, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("サイト設定の読み込みに失敗しました: %w", err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("サイト設定の解析に失敗しました: %w", err)
	}
	return site, nil
}
