package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-event-storefront/internal/domain/event"
)

const testPlaceholder = "https://example.com/placeholder.png"

func TestMediaImageURL(t *testing.T) {
	tests := []struct {
		name string
		img  *event.Image
		want string
	}{
		{
			name: "IDから静的メディアURLを作る",
			img:  &event.Image{ID: "c837a6_rockfest~mv2.jpg"},
			want: "https://static.wixstatic.com/media/c837a6_rockfest~mv2.jpg/v1/fill/w_530,h_530,al_c,q_80,enc_auto/c837a6_rockfest~mv2.jpg",
		},
		{
			name: "wix:image 形式のURL",
			img:  &event.Image{URL: "wix:image://v1/c837a6_abc~mv2.png/poster.png#originWidth=800&originHeight=600"},
			want: "https://static.wixstatic.com/media/c837a6_abc~mv2.png/v1/fill/w_530,h_530,al_c,q_80,enc_auto/c837a6_abc~mv2.png",
		},
		{
			name: "静的メディアURL",
			img:  &event.Image{URL: "https://static.wixstatic.com/media/c837a6_abc~mv2.png"},
			want: "https://static.wixstatic.com/media/c837a6_abc~mv2.png/v1/fill/w_530,h_530,al_c,q_80,enc_auto/c837a6_abc~mv2.png",
		},
		{
			name: "その他のhttps URLはそのまま",
			img:  &event.Image{URL: "https://cdn.example.com/poster.jpg"},
			want: "https://cdn.example.com/poster.jpg",
		},
		{"画像なしはプレースホルダー", nil, testPlaceholder},
		{"参照が空ならプレースホルダー", &event.Image{}, testPlaceholder},
		{"不正なURLはプレースホルダー", &event.Image{URL: "javascript:alert(1)"}, testPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaImageURL(tt.img, 530, 530, testPlaceholder))
		})
	}
}

func TestMediaImage(t *testing.T) {
	html := string(MediaImage(&event.Image{ID: "abc.jpg", Alt: `Rock "Fest"`}, 530, 530, "hero", testPlaceholder))

	assert.Contains(t, html, `src="https://static.wixstatic.com/media/abc.jpg/v1/fill/w_530,h_530,al_c,q_80,enc_auto/abc.jpg"`)
	assert.Contains(t, html, `width="530"`)
	assert.Contains(t, html, `height="530"`)
	assert.Contains(t, html, `alt="Rock &#34;Fest&#34;"`)
	assert.Contains(t, html, `class="hero"`)
	assert.Contains(t, html, `loading="lazy"`)
}
