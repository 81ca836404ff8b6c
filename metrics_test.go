package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEmpty(t *testing.T) {
	v := New[int64]()
	m := v.Metrics()

	assert.Equal(t, 0, m.Len)
	assert.Equal(t, 0, m.Cap)
	assert.Equal(t, 8, m.ElemSize)
	assert.Equal(t, 0, m.BytesInUse)
	assert.Equal(t, 0, m.BytesReserved)
	assert.Equal(t, 0.0, m.Utilization)
	assert.Equal(t, uint64(0), m.Grows)
}

func TestMetricsSnapshot(t *testing.T) {
	v := New[int64]()
	for i := int64(0); i < 3; i++ {
		_, err := v.PushBack(i)
		require.NoError(t, err)
	}

	m := v.Metrics()
	assert.Equal(t, 3, m.Len)
	assert.Equal(t, 4, m.Cap)
	assert.Equal(t, 24, m.BytesInUse)
	assert.Equal(t, 32, m.BytesReserved)
	assert.Equal(t, 0.75, m.Utilization)
	assert.Equal(t, uint64(3), m.Grows)
}

func TestMetricsTrackReserveAndShrink(t *testing.T) {
	v := NewWithSize[int64](4)
	require.Equal(t, 1.0, v.Utilization())
	// NewWithSize allocates directly, without a growth step.
	require.Equal(t, uint64(0), v.Grows())

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, uint64(1), v.Grows())
	assert.Equal(t, 0.4, v.Utilization())

	// Shrinking the size never shrinks the reservation.
	require.NoError(t, v.Resize(2))
	assert.Equal(t, 80, v.BytesReserved())
	assert.Equal(t, 16, v.BytesInUse())
}
