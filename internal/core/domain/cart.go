package domain

// LineItem is one cart entry: a book and the quantity desired.
type LineItem struct {
	BookID   int64   `json:"book_id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is the client-local ordered ledger of items pending checkout.
// At most one line item exists per book id and every quantity is >= 1;
// the mutators below preserve both invariants.
//
// The cart performs no stock validation. Stock is an external fact owned
// by the bookstore API and is checked at the point of adding items and
// authoritatively at order placement.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges the item into the cart: an existing line for the same book
// gains quantity 1 in place, otherwise the item is appended with quantity 1.
// Item order is preserved.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].BookID == item.BookID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove deletes the line for bookID. Removing an absent book is a no-op.
func (c *Cart) Remove(bookID int64) {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of the line for bookID, keeping its
// position. A quantity <= 0 removes the line instead of storing it.
// Setting quantity for an absent book is a no-op.
func (c *Cart) SetQuantity(bookID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(bookID)
		return
	}
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all lines.
// No currency rounding is applied; formatting is a presentation concern.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
