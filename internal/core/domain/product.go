package domain

// Product is an affiliate-shop product normalised from a provider feed.
// All providers map their feed rows into this shape before ranking.
type Product struct {
	// ID uniquely identifies the product. Assigned at ingest if the
	// feed row carries none.
	ID string

	// Provider is the name of the feed provider the product came from.
	Provider string

	// Name is the product title, e.g. "Mega sej køkkenkniv".
	Name string

	// Category is the feed's category path, e.g. "Køkken > Knive".
	Category string

	// Brand is the manufacturer or brand name. May be empty.
	Brand string

	// Description is the feed's long description. May be empty.
	Description string

	// URL is the affiliate deep link.
	URL string

	// ImageURL is the product image link.
	ImageURL string

	// Price is the current price in øre.
	Price int64

	// OldPrice is the pre-discount price in øre; zero when absent.
	OldPrice int64

	// InStock reports whether the feed marks the product available.
	InStock bool

	// Tags are free-text labels from the feed.
	Tags []string
}

// SearchName returns the text the ranking engine matches against.
func (p Product) SearchName() string { return p.Name }

// SearchCategory returns the category text for ranking.
func (p Product) SearchCategory() string { return p.Category }

// HasDiscount reports whether the product has an active price cut.
func (p Product) HasDiscount() bool {
	return p.OldPrice > 0 && p.Price < p.OldPrice
}

// ProductMatch is a ranked shop search hit.
type ProductMatch struct {
	// Product is the matched product.
	Product Product

	// Rank is the match quality; lower is better. Adjusted in place by
	// the diversity pass.
	Rank int
}
