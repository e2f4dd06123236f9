package model

// Product is a read-only catalog entity owned by the commerce backend.
// Prices arrive pre-formatted for display; the bot never does arithmetic
// on them.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       string
	WeightKG    float64
	ImageID     string
}
