package core

// Untrack runs fn with dependency tracking suspended: any Observable
// read inside fn is not recorded against whatever derivation is
// currently running. Grounded on the Untrack/peek pattern in
// other_examples/2db61366_AnatoleLucet-sig__sig.go.go.
func Untrack(fn func()) {
	prev := global.trackingDerivation
	global.trackingDerivation = nil
	defer func() { global.trackingDerivation = prev }()
	fn()
}

// Batch runs fn with writes coalesced: reactions made stale by writes
// inside fn only actually rerun once fn returns, no matter how many
// writes happened or how deeply Batch is nested.
func Batch(fn func()) {
	StartBatch()
	defer EndBatch()
	fn()
}
