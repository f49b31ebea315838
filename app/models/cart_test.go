package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func sampleProduct(t *testing.T, id, name, price, tax string) *Product {
	t.Helper()
	return &Product{
		ID:            id,
		Name:          name,
		Category:      "Fruits",
		Unit:          UnitKG,
		PricePerUnit:  dec(t, price),
		TaxPercentage: dec(t, tax),
	}
}

func TestAddProductNeverDuplicatesIDs(t *testing.T) {
	cart := NewCart()
	apple := sampleProduct(t, "p1", "Apple", "100", "5")

	for i := 0; i < 5; i++ {
		cart.AddProduct(apple)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	if !cart.Items[0].Quantity.Equal(dec(t, "5")) {
		t.Fatalf("expected quantity 5, got %s", cart.Items[0].Quantity)
	}
}

func TestAddProductKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))
	cart.AddProduct(sampleProduct(t, "p2", "Orange", "40", "5"))
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))

	if cart.Items[0].ProductID != "p1" || cart.Items[1].ProductID != "p2" {
		t.Fatalf("unexpected order: %s, %s", cart.Items[0].ProductID, cart.Items[1].ProductID)
	}
}

func TestRemoveProductAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))

	cart.RemoveProduct("missing")

	if len(cart.Items) != 1 {
		t.Fatalf("expected cart unchanged, got %d items", len(cart.Items))
	}
}

func TestUpdateQuantityRemovesOnZeroOrNegative(t *testing.T) {
	for _, value := range []string{"0", "-1", "garbage", ""} {
		cart := NewCart()
		cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))

		cart.UpdateQuantity("p1", value)

		if len(cart.Items) != 0 {
			t.Errorf("UpdateQuantity(%q) should remove the item, cart has %d items", value, len(cart.Items))
		}
	}
}

func TestUpdateQuantityAcceptsDecimals(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))

	cart.UpdateQuantity("p1", "2.5")

	if !cart.Items[0].Quantity.Equal(dec(t, "2.5")) {
		t.Fatalf("expected quantity 2.5, got %s", cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))

	cart.UpdateQuantity("missing", "3")

	if !cart.Items[0].Quantity.Equal(dec(t, "1")) {
		t.Fatalf("expected quantity 1, got %s", cart.Items[0].Quantity)
	}
}

func TestTotals(t *testing.T) {
	cart := NewCart()
	item := sampleProduct(t, "p1", "Apple", "100", "18")
	cart.AddProduct(item)
	cart.AddProduct(item) // qty 2

	if got := cart.Subtotal(); !got.Equal(dec(t, "200")) {
		t.Errorf("Subtotal = %s, want 200", got)
	}
	if got := cart.TotalTax(); !got.Equal(dec(t, "36")) {
		t.Errorf("TotalTax = %s, want 36", got)
	}
	if got := cart.GrandTotal(); !got.Equal(dec(t, "236")) {
		t.Errorf("GrandTotal = %s, want 236", got)
	}
	if got := cart.DueBalance(); !got.Equal(dec(t, "236")) {
		t.Errorf("DueBalance = %s, want 236", got)
	}

	cart.SetDiscount("36")
	cart.SetReceivedAmount("100")
	if got := cart.GrandTotal(); !got.Equal(dec(t, "200")) {
		t.Errorf("GrandTotal after discount = %s, want 200", got)
	}
	if got := cart.DueBalance(); !got.Equal(dec(t, "100")) {
		t.Errorf("DueBalance after payment = %s, want 100", got)
	}
}

func TestGrandTotalMayGoNegative(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "10", "0"))
	cart.SetDiscount("50")

	if got := cart.GrandTotal(); !got.Equal(dec(t, "-40")) {
		t.Fatalf("GrandTotal = %s, want -40", got)
	}
}

func TestSetDiscountBadInputDefaultsToZero(t *testing.T) {
	cart := NewCart()
	cart.SetDiscount("12")
	cart.SetDiscount("not-a-number")
	if !cart.Discount.IsZero() {
		t.Fatalf("expected discount 0, got %s", cart.Discount)
	}
	cart.SetReceivedAmount("oops")
	if !cart.ReceivedAmount.IsZero() {
		t.Fatalf("expected received amount 0, got %s", cart.ReceivedAmount)
	}
}

func TestClear(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))
	cart.SetDiscount("10")
	cart.SetReceivedAmount("20")

	cart.Clear()

	if len(cart.Items) != 0 || !cart.Discount.IsZero() || !cart.ReceivedAmount.IsZero() {
		t.Fatalf("clear left state behind: %+v", cart)
	}
}

func TestSnapshotCarriesOnlyProductIDAndQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(sampleProduct(t, "p1", "Apple", "100", "5"))
	cart.UpdateQuantity("p1", "3")
	cart.SetDiscount("15")
	cart.SetReceivedAmount("50")

	raw, err := json.Marshal(cart.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	var decoded struct {
		Items []map[string]json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if len(decoded.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(decoded.Items))
	}
	item := decoded.Items[0]
	if len(item) != 2 {
		t.Fatalf("expected exactly product_id and quantity, got %v", item)
	}
	if _, ok := item["product_id"]; !ok {
		t.Error("missing product_id")
	}
	if _, ok := item["quantity"]; !ok {
		t.Error("missing quantity")
	}
}
