package asynchook

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/bintext"
)

type countingHooks struct {
	mu     sync.Mutex
	events []string
	block  chan struct{}
}

func (c *countingHooks) record(ev string) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *countingHooks) DecodeRejected(op string, _ error) { c.record("reject:" + op) }
func (c *countingHooks) EncodeTruncated(op string, _ int)  { c.record("truncate:" + op) }
func (c *countingHooks) SelfHeal(_, reason string)         { c.record("heal:" + reason) }
func (c *countingHooks) ProviderSetRejected(string)        { c.record("pressure") }

func TestDeliversAllWhenQueueHasRoom(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 64)

	c := bintext.MustNew(bintext.Options{Hooks: h, Trailing: bintext.TrailingDrop})
	_, _ = c.HexDecode("q")
	_, _ = c.Base64Decode("A")
	_, _ = c.Base64Encode([]byte{1})
	h.SelfHeal("k", "corrupt")
	h.ProviderSetRejected("k")
	h.Close()

	assert.ElementsMatch(t, []string{
		"reject:hex.decode",
		"reject:base64.decode",
		"truncate:base64.encode",
		"heal:corrupt",
		"pressure",
	}, inner.events)
	assert.Zero(t, h.Dropped())
}

func TestDropsWhenFullAndAfterClose(t *testing.T) {
	inner := &countingHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)

	// first event occupies the worker, second fills the queue
	h.SelfHeal("a", "corrupt")
	for i := 0; i < 10; i++ {
		h.SelfHeal("b", "corrupt")
	}
	require.GreaterOrEqual(t, h.Dropped(), uint64(8))

	close(inner.block)
	h.Close()
	before := h.Dropped()
	h.ProviderSetRejected("late")
	assert.Equal(t, before+1, h.Dropped())
	h.Close() // idempotent
}
