package mailbox

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const billEML = `From: Swiggy <noreply@swiggy.in>
To: someone@example.com
Subject: Your order from Spice Villa is confirmed
Date: Sun, 15 Mar 2026 21:50:00 +0530
Message-ID: <order-123@swiggy.in>
Content-Type: text/html; charset=utf-8

<html><body><p>Order details</p></body></html>
`

const promoEML = `From: Marketing <offers@othermail.example>
To: someone@example.com
Subject: Mega sale
Date: Mon, 16 Mar 2026 10:00:00 +0530
Message-ID: <promo-1@othermail.example>
Content-Type: text/plain; charset=utf-8

Big discounts!
`

const multipartEML = `From: Swiggy <noreply@swiggy.in>
To: someone@example.com
Subject: Your order from Tandoor House is confirmed
Date: Tue, 17 Mar 2026 13:05:00 +0530
Message-ID: <order-456@swiggy.in>
Content-Type: multipart/alternative; boundary="b1"

--b1
Content-Type: text/plain; charset=utf-8

Plain text order summary
--b1
Content-Type: text/html; charset=utf-8

<html><body><p>HTML order summary</p></body></html>
--b1--
`

func writeEML(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMaildirSourceFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeEML(t, dir, "b.eml", multipartEML)
	writeEML(t, dir, "a.eml", billEML)
	writeEML(t, dir, "c.eml", promoEML)
	writeEML(t, dir, "notes.txt", "not a message")

	src := NewMaildirSource(dir, "noreply@swiggy.in", slog.New(slog.DiscardHandler))
	msgs, err := src.Fetch(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2 (sender filter applied)", len(msgs))
	}
	if msgs[0].ID != "order-123@swiggy.in" || msgs[1].ID != "order-456@swiggy.in" {
		t.Errorf("order = %q, %q; want sorted by date", msgs[0].ID, msgs[1].ID)
	}
	if msgs[0].Subject != "Your order from Spice Villa is confirmed" {
		t.Errorf("subject = %q", msgs[0].Subject)
	}
}

func TestMaildirSourcePrefersHTMLPart(t *testing.T) {
	dir := t.TempDir()
	writeEML(t, dir, "m.eml", multipartEML)

	src := NewMaildirSource(dir, "", slog.New(slog.DiscardHandler))
	msgs, err := src.Fetch(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Body != "<html><body><p>HTML order summary</p></body></html>" {
		t.Errorf("body = %q, want the HTML part", msgs[0].Body)
	}
}

func TestMaildirSourceSinceCutoff(t *testing.T) {
	dir := t.TempDir()
	writeEML(t, dir, "a.eml", billEML)      // 15 Mar 2026
	writeEML(t, dir, "b.eml", multipartEML) // 17 Mar 2026

	src := NewMaildirSource(dir, "noreply@swiggy.in", slog.New(slog.DiscardHandler))
	since := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	msgs, err := src.Fetch(context.Background(), since)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "order-456@swiggy.in" {
		t.Fatalf("messages = %+v, want only the later order", msgs)
	}
}
