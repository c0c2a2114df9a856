package triage

import "testing"

func TestClassifyBillEmail(t *testing.T) {
	cases := []struct {
		name     string
		subject  string
		body     string
		bill     bool
		excluded bool
	}{
		{
			name:    "order confirmation",
			subject: "Your order from Spice Villa is confirmed",
			body:    "Bill details below. Items ordered: ...",
			bill:    true,
		},
		{
			name:    "promo",
			subject: "50% OFF on your next order!",
			body:    "Use coupon code SAVE50 today",
			bill:    false,
		},
		{
			name:    "otp",
			subject: "Login to your account",
			body:    "Your OTP is 482913",
			bill:    false,
		},
		{
			name:    "refund beats bill indicators",
			subject: "Your order details",
			body:    "Refund initiated for your order. Total amount: 240",
			bill:    false,
		},
		{
			name:    "payment failure",
			subject: "Payment failed for your order",
			body:    "Order details attached",
			bill:    false,
		},
		{
			name:     "instamart subject excluded",
			subject:  "Your Instamart order is on its way",
			body:     "Order confirmed. Items ordered: milk, bread",
			excluded: true,
		},
		{
			name:     "grocery body excluded",
			subject:  "Your order is confirmed",
			body:     "Thanks for choosing us for your groceries!",
			excluded: true,
		},
		{
			name:    "plain chatter",
			subject: "Hello",
			body:    "Nothing to see here",
			bill:    false,
		},
		{
			name:    "empty input degrades quietly",
			subject: "",
			body:    "",
			bill:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.subject, tc.body)
			if got.IsBillEmail != tc.bill {
				t.Errorf("IsBillEmail = %v, want %v", got.IsBillEmail, tc.bill)
			}
			if got.IsExcludedCategory != tc.excluded {
				t.Errorf("IsExcludedCategory = %v, want %v", got.IsExcludedCategory, tc.excluded)
			}
		})
	}
}

func TestExclusionReasonPrefersSubject(t *testing.T) {
	got := Classify("Instamart essentials", "your grocery run")
	if !got.IsExcludedCategory {
		t.Fatal("expected exclusion")
	}
	if got.ExclusionReason != "subject contains: Instamart" {
		t.Errorf("ExclusionReason = %q", got.ExclusionReason)
	}
}

func TestExcludedBeatsBill(t *testing.T) {
	// A grocery receipt is still excluded even though it looks like a bill.
	got := Classify("Order confirmed", "Your Instamart bill details")
	if !got.IsExcludedCategory {
		t.Fatal("expected exclusion")
	}
	if got.IsBillEmail {
		t.Error("excluded message must not classify as bill")
	}
}
