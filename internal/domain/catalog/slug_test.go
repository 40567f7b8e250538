package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/domain/catalog"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "MacBook Air M3", "macbook-air-m3"},
		{"acentos", "Cámara de Acción", "camara-de-accion"},
		{"turco", "Ev & Yaşam Ürünleri", "ev-yasam-urunleri"},
		{"i sin punto", "Kadın Giyim", "kadin-giyim"},
		{"simbolos colapsados", `iPhone 15 Pro 128GB -- "Titanio"`, "iphone-15-pro-128gb-titanio"},
		{"espacios extremos", "  Spor & Outdoor  ", "spor-outdoor"},
		{"eñe", "Pequeño hogar", "pequeno-hogar"},
		{"vacio", "", ""},
		{"solo simbolos", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Slugify(tc.in))
		})
	}
}
