package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/bintext"
	"github.com/unkn0wn-root/bintext/codec"
)

type user struct {
	ID    string   `json:"id" msgpack:"id" cbor:"id"`
	Name  string   `json:"name" msgpack:"name" cbor:"name"`
	Roles []string `json:"roles,omitempty" msgpack:"roles,omitempty" cbor:"roles,omitempty"`
}

var ada = user{ID: "550e8400e29b41d4a716446655440000", Name: "Ada", Roles: []string{"admin"}}

func roundTrip[V any](t *testing.T, c codec.Codec[V], v V) V {
	t.Helper()
	b, err := c.Encode(v)
	require.NoError(t, err)
	out, err := c.Decode(b)
	require.NoError(t, err)
	return out
}

func TestValueCodecsRoundTrip(t *testing.T) {
	cases := map[string]codec.Codec[user]{
		"json":     codec.JSON[user]{},
		"msgpack":  codec.Msgpack[user]{},
		"cbor":     codec.MustCBOR[user](false),
		"cbor-det": codec.MustCBOR[user](true),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ada, roundTrip(t, c, ada))
		})
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := codec.MustCBOR[map[string]int](true)
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(m)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := c.Encode(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestProtobuf(t *testing.T) {
	c := codec.NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	out := roundTrip[*wrapperspb.StringValue](t, c, wrapperspb.String("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, proto.Equal(wrapperspb.String("550e8400-e29b-41d4-a716-446655440000"), out))
}

func TestRawCodecs(t *testing.T) {
	in := []byte{1, 2, 3}
	out := roundTrip[[]byte](t, codec.Bytes{}, in)
	assert.Equal(t, in, out)
	out[0] = 9
	assert.Equal(t, byte(1), in[0], "Bytes.Decode must not alias its input")

	assert.Equal(t, "héllo", roundTrip[string](t, codec.String{}, "héllo"))
}

func TestLimit(t *testing.T) {
	c := codec.Limit[string]{Inner: codec.String{}, MaxDecode: 4}

	_, err := c.Decode([]byte("12345"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bintext.ErrLength)

	v, err := c.Decode([]byte("1234"))
	require.NoError(t, err)
	assert.Equal(t, "1234", v)

	unlimited := codec.Limit[string]{Inner: codec.String{}}
	v, err = unlimited.Decode([]byte("123456789"))
	require.NoError(t, err)
	assert.Equal(t, "123456789", v)
}
