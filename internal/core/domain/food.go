package domain

// FoodItem is an entry in the nutrition catalog.
// Names are bilingual; search matches against the Danish name.
type FoodItem struct {
	// ID uniquely identifies the food item.
	ID string

	// NameDa is the Danish name, e.g. "hvedemel".
	NameDa string

	// NameEn is the English name, e.g. "wheat flour".
	NameEn string

	// Category is an optional grouping, e.g. "kartofler".
	Category string

	// Nutrients per 100 g.
	KcalPer100g    float64
	ProteinPer100g float64
	FatPer100g     float64
	CarbsPer100g   float64
}

// SearchName returns the text the ranking engine matches against.
func (f FoodItem) SearchName() string { return f.NameDa }

// SearchCategory returns the optional category text for ranking.
func (f FoodItem) SearchCategory() string { return f.Category }

// FoodMatch is a ranked food search hit.
type FoodMatch struct {
	// Item is the matched food item.
	Item FoodItem

	// Rank is the match quality; lower is better.
	Rank int
}
