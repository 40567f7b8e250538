// seed genera un script SQL para poblar el catálogo con categorías y
// productos de ejemplo (los del storefront original).
//
// Uso: go run ./cmd/seed [ruta de salida]
// Por defecto escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/domain/catalog"
)

type seedCategory struct {
	Name        string
	Description string
	ImageURL    string
	SortOrder   int
}

type seedProduct struct {
	Name             string
	ShortDescription string
	Description      string
	SKU              string
	Price            string
	ComparePrice     string // vacío = NULL
	Stock            int
	Image            string
	Featured         bool
	Category         string // nombre de la categoría seed
}

var categories = []seedCategory{
	{"Elektronik", "Elektronik ürünler, bilgisayar, telefon ve aksesuarlar", "https://via.placeholder.com/300x200?text=Elektronik", 1},
	{"Giyim", "Erkek, kadın ve çocuk giyim ürünleri", "https://via.placeholder.com/300x200?text=Giyim", 2},
	{"Ev & Yaşam", "Ev dekorasyonu, mobilya ve yaşam ürünleri", "https://via.placeholder.com/300x200?text=Ev", 3},
	{"Spor & Outdoor", "Spor giyim, ekipman ve outdoor ürünleri", "https://via.placeholder.com/300x200?text=Spor", 4},
	{"Kitap & Hobi", "Kitaplar, oyun ve hobi ürünleri", "https://via.placeholder.com/300x200?text=Kitap", 5},
}

var products = []seedProduct{
	{"iPhone 15 Pro 128GB", "Apple iPhone 15 Pro 128GB Titanyum", "A17 Pro çip, ProRAW fotoğraf çekimi, 5G desteği.", "IPH15PRO128", "45999.99", "49999.99", 25, "https://via.placeholder.com/500x500?text=iPhone+15+Pro", true, "Elektronik"},
	{"Samsung Galaxy S24 Ultra", "Samsung Galaxy S24 Ultra 256GB", "S Pen desteği, 200MP kamera, 5000mAh batarya.", "SAMS24ULTRA", "42999.99", "", 18, "https://via.placeholder.com/500x500?text=Galaxy+S24", true, "Elektronik"},
	{"MacBook Air M3 13\"", "Apple MacBook Air M3 13\" 256GB", "M3 çip, 8GB RAM, 256GB SSD.", "MBAIRM3-13", "34999.99", "", 12, "https://via.placeholder.com/500x500?text=MacBook+Air", true, "Elektronik"},
	{"Kadın Trençkot", "Su geçirmez kemerli trençkot", "Dört mevsim kullanıma uygun klasik kesim.", "TRENC-W-01", "1299.90", "1599.90", 40, "https://via.placeholder.com/500x500?text=Trenckot", false, "Giyim"},
	{"Erkek Oversize T-Shirt", "Pamuklu oversize t-shirt", "%100 pamuk, önden baskılı.", "TSHIRT-M-03", "249.90", "", 120, "https://via.placeholder.com/500x500?text=T-Shirt", false, "Giyim"},
	{"Ahşap Kitaplık", "5 raflı doğal ahşap kitaplık", "Masif çam, 180x80cm.", "KTPLK-5R", "2499.00", "", 7, "https://via.placeholder.com/500x500?text=Kitaplik", false, "Ev & Yaşam"},
	{"Yoga Matı 6mm", "Kaymaz yüzeyli yoga matı", "TPE malzeme, taşıma askısı dahil.", "YOGA-6MM", "349.90", "449.90", 60, "https://via.placeholder.com/500x500?text=Yoga+Mati", true, "Spor & Outdoor"},
	{"Satranç Takımı", "Ahşap satranç takımı", "El yapımı, katlanabilir tahta.", "SATRANC-01", "599.00", "", 15, "https://via.placeholder.com/500x500?text=Satranc", false, "Kitap & Hobi"},
}

func main() {
	outPath := "internal/infrastructure/postgres/migrations/002_seed_catalog.sql"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	var b strings.Builder
	b.WriteString("-- Catálogo de ejemplo. Generado con: go run ./cmd/seed\n\n")

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		id := uuid.New().String()
		categoryIDs[c.Name] = id
		fmt.Fprintf(&b,
			"INSERT INTO categories (id, name, slug, description, image_url, sort_order) VALUES ('%s', '%s', '%s', '%s', '%s', %d) ON CONFLICT (slug) DO NOTHING;\n",
			id, sqlEscape(c.Name), catalog.Slugify(c.Name), sqlEscape(c.Description), sqlEscape(c.ImageURL), c.SortOrder,
		)
	}
	b.WriteString("\n")

	for _, p := range products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			fmt.Fprintf(os.Stderr, "producto %q: categoría desconocida %q\n", p.Name, p.Category)
			os.Exit(1)
		}
		comparePrice := "NULL"
		if p.ComparePrice != "" {
			comparePrice = p.ComparePrice
		}
		fmt.Fprintf(&b,
			"INSERT INTO products (id, category_id, sku, name, slug, description, short_description, price, compare_price, stock_quantity, images, is_featured) "+
				"VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', %s, %s, %d, ARRAY['%s'], %t) ON CONFLICT (sku) DO NOTHING;\n",
			uuid.New().String(), categoryID, sqlEscape(p.SKU), sqlEscape(p.Name), catalog.Slugify(p.Name),
			sqlEscape(p.Description), sqlEscape(p.ShortDescription), p.Price, comparePrice, p.Stock,
			sqlEscape(p.Image), p.Featured,
		)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Seed generado: %s (%d categorías, %d productos)\n", outPath, len(categories), len(products))
}

// sqlEscape duplica comillas simples para literales SQL.
func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
