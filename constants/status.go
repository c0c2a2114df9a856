package constants

// MessageOutcome is the canonical per-message result recorded by the sync
// pipeline.
type MessageOutcome string

// Stable values (logged and stored as these exact strings).
const (
	OutcomeParsed        MessageOutcome = "PARSED"         // order extracted and stored
	OutcomeDuplicate     MessageOutcome = "DUPLICATE"      // message id already stored
	OutcomeExcluded      MessageOutcome = "EXCLUDED"       // grocery/non-restaurant category
	OutcomeNotBill       MessageOutcome = "NOT_BILL"       // promo/OTP/refund/etc.
	OutcomeUnparseable   MessageOutcome = "UNPARSEABLE"    // all extractor passes failed
	OutcomePersistFailed MessageOutcome = "PERSIST_FAILED" // storage error
)

// OutcomeStrings returns every outcome value; schema enum validation uses
// this list.
func OutcomeStrings() []string {
	return []string{
		string(OutcomeParsed),
		string(OutcomeDuplicate),
		string(OutcomeExcluded),
		string(OutcomeNotBill),
		string(OutcomeUnparseable),
		string(OutcomePersistFailed),
	}
}
