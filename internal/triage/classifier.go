// Package triage decides whether a raw message is worth extracting at all:
// is it an actual order receipt, and does it belong to an excluded product
// category (grocery delivery and the like). Pure functions over two
// strings; no network, no storage, no errors.
package triage

import (
	"regexp"
	"strings"
)

// Keyword tables are immutable configuration: compiled once at package
// init and shared across concurrent calls without locking.

// categoryExclusions identifies grocery/non-restaurant delivery emails
// that must be dropped regardless of their receipt-ness.
var categoryExclusions = []string{
	`instamart`,
	`insta\s*mart`,
	`grocery`,
	`groceries`,
	`essentials\s*delivery`,
	`daily\s*essentials`,
	`household\s*items`,
	`supermarket`,
}

// billIndicators mark a message as an actual order bill.
var billIndicators = []string{
	`order\s*confirmed`,
	`order\s*details`,
	`your\s*order`,
	`bill\s*details`,
	`items?\s*ordered`,
	`total\s*(?:amount|bill)`,
	`delivery\s*address`,
}

// nonBillIndicators mark OTP, promotional, refund, cancellation and
// payment-failure mail. Checked before bill indicators.
var nonBillIndicators = []string{
	`otp\s*(?:is|:)`,
	`verification\s*code`,
	`reset\s*password`,
	`refer\s*(?:a\s*)?friend`,
	`promotional`,
	`coupon\s*code`,
	`exclusive\s*offer`,
	`payment\s*failed`,
	`payment\s*unsuccessful`,
	`transaction\s*failed`,
	`order\s*cancelled`,
	`refund\s*initiated`,
	`refund\s*processed`,
}

var (
	exclusionPattern = compileAny(categoryExclusions)
	billPattern      = compileAny(billIndicators)
	nonBillPattern   = compileAny(nonBillIndicators)
)

func compileAny(patterns []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
}

// Result is the triage verdict for one message.
type Result struct {
	IsBillEmail        bool
	IsExcludedCategory bool
	// ExclusionReason is the first matched exclusion keyword, prefixed
	// with where it was found. Empty unless IsExcludedCategory.
	ExclusionReason string
}

// Classify runs the exclusion gate and the bill/non-bill decision.
// Exclusion wins: a grocery receipt is excluded even though it would
// otherwise classify as a bill. Malformed input degrades to false/false.
func Classify(subject, body string) Result {
	if m := exclusionPattern.FindString(subject); m != "" {
		return Result{IsExcludedCategory: true, ExclusionReason: "subject contains: " + m}
	}
	if m := exclusionPattern.FindString(body); m != "" {
		return Result{IsExcludedCategory: true, ExclusionReason: "body contains: " + m}
	}

	text := subject + " " + body
	if nonBillPattern.MatchString(text) {
		return Result{}
	}
	if billPattern.MatchString(text) {
		return Result{IsBillEmail: true}
	}
	return Result{}
}
