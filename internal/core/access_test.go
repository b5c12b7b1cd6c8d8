// AngelaMos | 2026
// access_test.go

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct{ ownerID int64 }

func noteOwner(n *note) int64 { return n.ownerID }

func TestOwnedOrNotFound(t *testing.T) {
	got, err := OwnedOrNotFound(&note{ownerID: 7}, nil, noteOwner, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ownerID)

	_, err = OwnedOrNotFound(&note{ownerID: 7}, nil, noteOwner, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = OwnedOrNotFound[note](nil, nil, noteOwner, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("boom")
	_, err = OwnedOrNotFound[note](nil, boom, noteOwner, 8)
	assert.ErrorIs(t, err, boom)
}

func TestJSONRawRoundTrip(t *testing.T) {
	var j JSONRaw
	require.NoError(t, j.Scan([]byte(`{"pace":"slow"}`)))

	out, err := j.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"pace":"slow"}`, string(out))

	v, err := j.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"pace":"slow"}`, v)

	var empty JSONRaw
	out, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	v, err = JSONRaw("null").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
