package domain

import "testing"

func bookA() LineItem { return LineItem{BookID: 1, Title: "A", Price: 10.00} }
func bookB() LineItem { return LineItem{BookID: 2, Title: "B", Price: 5.00} }

func TestCart_Add_MergesSameBook(t *testing.T) {
	var cart Cart
	for i := 0; i < 5; i++ {
		cart.Add(bookA())
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCart_Add_PreservesOrder(t *testing.T) {
	var cart Cart
	cart.Add(bookA())
	cart.Add(bookB())
	cart.Add(bookA())

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(cart.Items))
	}
	if cart.Items[0].BookID != 1 || cart.Items[1].BookID != 2 {
		t.Fatalf("unexpected order: %+v", cart.Items)
	}
}

func TestCart_SetQuantity_NonPositiveRemoves(t *testing.T) {
	var withSet, withRemove Cart
	for _, c := range []*Cart{&withSet, &withRemove} {
		c.Add(bookA())
		c.Add(bookB())
	}

	withSet.SetQuantity(1, 0)
	withRemove.Remove(1)

	if len(withSet.Items) != len(withRemove.Items) {
		t.Fatalf("setQuantity(id, 0) and remove(id) diverged: %+v vs %+v", withSet.Items, withRemove.Items)
	}
	if withSet.Items[0].BookID != 2 {
		t.Fatalf("expected only book 2 to remain, got %+v", withSet.Items)
	}

	withSet.SetQuantity(2, -3)
	if len(withSet.Items) != 0 {
		t.Fatalf("negative quantity should remove the item, got %+v", withSet.Items)
	}
}

func TestCart_SetQuantity_AbsentBookIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(bookA())
	cart.SetQuantity(99, 3)

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("setQuantity on absent book mutated the cart: %+v", cart.Items)
	}
}

func TestCart_Remove_AbsentBookIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(bookA())
	cart.Remove(99)

	if len(cart.Items) != 1 {
		t.Fatalf("remove on absent book mutated the cart: %+v", cart.Items)
	}
}

func TestCart_Totals(t *testing.T) {
	var cart Cart
	if cart.TotalItems() != 0 || cart.TotalPrice() != 0 {
		t.Fatalf("empty cart totals should be zero")
	}

	// Two copies of A at 10.00, one B at 5.00.
	cart.Add(bookA())
	cart.Add(bookA())
	cart.Add(bookB())

	if got := cart.TotalItems(); got != 3 {
		t.Fatalf("expected totalItems 3, got %d", got)
	}
	if got := cart.TotalPrice(); got != 25.00 {
		t.Fatalf("expected totalPrice 25.00, got %v", got)
	}

	cart.Remove(1)
	if got := cart.TotalItems(); got != 1 {
		t.Fatalf("expected totalItems 1 after removing A, got %d", got)
	}
	if got := cart.TotalPrice(); got != 5.00 {
		t.Fatalf("expected totalPrice 5.00 after removing A, got %v", got)
	}

	cart.SetQuantity(2, 0)
	if len(cart.Items) != 0 || cart.TotalPrice() != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestCart_AddThenRemoveRestoresTotal(t *testing.T) {
	var cart Cart
	cart.Add(bookA())
	cart.Add(bookA())
	before := cart.TotalPrice()

	cart.Add(bookB())
	cart.Remove(2)

	if got := cart.TotalPrice(); got != before {
		t.Fatalf("expected total %v restored, got %v", before, got)
	}
}

func TestSession_IsAdmin(t *testing.T) {
	var nilSession *Session
	if nilSession.IsAdmin() {
		t.Fatalf("nil session must not be admin")
	}

	customer := &Session{Token: "t", User: User{Username: "alice", Role: RoleCustomer}}
	if customer.IsAdmin() {
		t.Fatalf("customer must not be admin")
	}

	admin := &Session{Token: "t", User: User{Username: "root", Role: RoleAdmin}}
	if !admin.IsAdmin() {
		t.Fatalf("admin role not detected")
	}
}
