package domain

// Product é uma referência somente leitura do catálogo, consumida apenas
// para preço e percentual de margem
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         *string `json:"brand,omitempty"`
	Price         float64 `json:"price"`
	MarginPercent float64 `json:"margin_percent"`
}
