package bintext

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// Codecs and stores call them on hot paths.
type Hooks interface {
	// A decode was rejected. op ∈ {"hex.decode", "base64.decode"}.
	DecodeRejected(op string, err error)

	// TrailingDrop discarded 1 or 2 bytes that did not fill a 3-byte group.
	EncodeTruncated(op string, dropped int)

	// A stored entry was deleted on read.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(string, error) {}
func (NopHooks) EncodeTruncated(string, int)  {}
func (NopHooks) SelfHeal(string, string)      {}
func (NopHooks) ProviderSetRejected(string)   {}
