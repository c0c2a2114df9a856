package extract

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
)

const billHTML = `
<html><body>
<p>Your order from Spice Villa is confirmed</p>
<p>Order details below. Ordered at 9:45 PM on 15 Mar 2026</p>
<table>
<tr><th>Item</th><th>Qty</th><th>Price</th></tr>
<tr><td>Paneer Tikka</td><td>2 x</td><td>Rs. 340</td></tr>
<tr><td>Butter Naan</td><td>1</td><td>Rs. 60</td></tr>
<tr><td>Total</td><td></td><td>Rs. 400</td></tr>
</table>
</body></html>`

type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestMarkupPassParsesSwiggyBill(t *testing.T) {
	pass := &markupPass{now: time.Now, log: testLogger()}
	msg := entity.RawMessage{
		ID:      "m1",
		Subject: "Your order from Spice Villa is confirmed",
		Body:    billHTML,
	}

	order, err := pass.Extract(context.Background(), msg)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if order.RestaurantName != "Spice Villa" {
		t.Errorf("restaurant = %q, want Spice Villa", order.RestaurantName)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(order.LineItems))
	}
	if order.LineItems[0].Name != "Paneer Tikka" || order.LineItems[0].Quantity != 2 {
		t.Errorf("item[0] = %+v, want Paneer Tikka x2", order.LineItems[0])
	}
	if order.LineItems[1].Name != "Butter Naan" || order.LineItems[1].Quantity != 1 {
		t.Errorf("item[1] = %+v, want Butter Naan x1", order.LineItems[1])
	}
	if got := order.OrderedAt; got.Year() != 2026 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("date = %v, want 2026-03-15", got)
	}
	if order.OrderedAt.Hour() != 21 || order.OrderedAt.Minute() != 45 {
		t.Errorf("time = %02d:%02d, want 21:45", order.OrderedAt.Hour(), order.OrderedAt.Minute())
	}
	if !order.HasTime() {
		t.Error("HasTime() = false, want true")
	}
}

func TestMarkupPassDateWithoutTimeStaysMidnight(t *testing.T) {
	pass := &markupPass{now: time.Now, log: testLogger()}
	msg := entity.RawMessage{
		ID:      "m2",
		Subject: "Your order from Tandoor House is confirmed",
		Body: `<html><body><p>Order details for 12 Jan 2026</p>
<table><tr><td>Dal Tadka</td><td>Rs. 180</td></tr></table></body></html>`,
	}

	order, err := pass.Extract(context.Background(), msg)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if order.HasTime() {
		t.Errorf("HasTime() = true for midnight order, want false")
	}
}

func TestOraclePassParsesValidPayload(t *testing.T) {
	completer := &fakeCompleter{response: "```json\n" + `{
		"restaurant_name": "Spice Villa",
		"order_date": "2026-03-15",
		"order_time": "21:45",
		"total_price": 400.0,
		"dishes": [
			{"name": "Paneer Tikka", "quantity": 2, "price": 170.0},
			{"name": "Butter Naan", "quantity": 1, "price": 60.0}
		]
	}` + "\n```"}
	pass := &oraclePass{completer: completer, now: time.Now, log: testLogger()}

	order, err := pass.Extract(context.Background(), entity.RawMessage{ID: "m3", Subject: "s", Body: billHTML})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if order.RestaurantName != "Spice Villa" {
		t.Errorf("restaurant = %q", order.RestaurantName)
	}
	if order.TotalPrice == nil || *order.TotalPrice != 400.0 {
		t.Errorf("total price = %v, want 400", order.TotalPrice)
	}
	if order.OrderedAt.Hour() != 21 || order.OrderedAt.Minute() != 45 {
		t.Errorf("time = %v, want 21:45", order.OrderedAt)
	}
	if len(order.LineItems) != 2 || order.LineItems[0].Quantity != 2 {
		t.Errorf("line items = %+v", order.LineItems)
	}
}

func TestOraclePassRejectsEmptyDishes(t *testing.T) {
	completer := &fakeCompleter{response: `{"restaurant_name": "X", "dishes": []}`}
	pass := &oraclePass{completer: completer, now: time.Now, log: testLogger()}

	if _, err := pass.Extract(context.Background(), entity.RawMessage{ID: "m4", Body: "<p>hi</p>"}); err == nil {
		t.Fatal("expected error for empty dishes")
	}
}

func TestExtractorGatesPromoMail(t *testing.T) {
	ex := NewExtractor(nil, testLogger())
	_, err := ex.Extract(context.Background(), entity.RawMessage{
		ID:      "m5",
		Subject: "50% OFF on your next order!",
		Body:    "Use coupon code TASTY50 for an exclusive offer",
	})
	if !errors.Is(err, ErrNotBill) {
		t.Fatalf("err = %v, want ErrNotBill", err)
	}
}

func TestExtractorGatesExcludedCategories(t *testing.T) {
	ex := NewExtractor(nil, testLogger())
	_, err := ex.Extract(context.Background(), entity.RawMessage{
		ID:      "m6",
		Subject: "Your Instamart order is confirmed",
		Body:    "order details: milk, eggs",
	})
	if !errors.Is(err, ErrExcluded) {
		t.Fatalf("err = %v, want ErrExcluded", err)
	}
}

func TestExtractorFallsBackToMarkupWhenOracleFails(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("api down")}
	ex := NewExtractor(completer, testLogger())

	order, err := ex.Extract(context.Background(), entity.RawMessage{
		ID:      "m7",
		Subject: "Your order from Spice Villa is confirmed",
		Body:    billHTML,
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if completer.calls != 1 {
		t.Errorf("oracle calls = %d, want 1", completer.calls)
	}
	if order.RestaurantName != "Spice Villa" {
		t.Errorf("restaurant = %q", order.RestaurantName)
	}
}

func TestExtractorUnparseableAfterAllPasses(t *testing.T) {
	ex := NewExtractor(nil, testLogger())
	_, err := ex.Extract(context.Background(), entity.RawMessage{
		ID:      "m8",
		Subject: "Order confirmed",
		Body:    "<html><body><p>Thanks for your order details</p></body></html>",
	})
	if !errors.Is(err, ErrUnparseable) {
		t.Fatalf("err = %v, want ErrUnparseable", err)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	ex := NewExtractor(nil, testLogger())
	msg := entity.RawMessage{
		ID:      "m9",
		Subject: "Your order from Spice Villa is confirmed",
		Body:    billHTML,
	}

	first, err := ex.Extract(context.Background(), msg)
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	second, err := ex.Extract(context.Background(), msg)
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if first.RestaurantName != second.RestaurantName || len(first.LineItems) != len(second.LineItems) {
		t.Errorf("extraction not stable: %+v vs %+v", first, second)
	}
}

func TestCleanDishName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Paneer Tikka ₹340", "Paneer Tikka"},
		{"Butter Naan Rs. 60", "Butter Naan"},
		{"Veg Biryani x 2", "Veg Biryani"},
		{"Masala Dosa (3)", "Masala Dosa"},
		{"  Chicken   Curry  ", "Chicken Curry"},
	}
	for _, c := range cases {
		if got := cleanDishName(c.in); got != c.want {
			t.Errorf("cleanDishName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
