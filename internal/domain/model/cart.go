package model

// CartLine is one position in a remote cart. ID addresses the line for
// removal; ProductID refers back to the catalog entry it was added from.
type CartLine struct {
	ID          string
	ProductID   string
	Name        string
	Description string
	Quantity    int
	UnitPrice   string
	LineTotal   string
}

// Cart is a snapshot of a user's cart as reported by the commerce backend,
// lines in backend order plus the formatted grand total.
type Cart struct {
	Lines []CartLine
	Total string
}

// Empty reports whether there is nothing in the cart.
func (c *Cart) Empty() bool { return c == nil || len(c.Lines) == 0 }
