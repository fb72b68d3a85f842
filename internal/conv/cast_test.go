package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt64(t *testing.T) {
	t.Run("valid max int64", func(t *testing.T) {
		got, err := Uint64ToInt64(math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt64(math.MaxInt64 + 1)
		assert.Error(t, err)
	})
}

func TestMulUint64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := MulUint64(1<<20, 24)
		assert.NoError(t, err)
		assert.Equal(t, uint64(24<<20), got)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := MulUint64(math.MaxUint64, 2)
		assert.Error(t, err)
	})
}

func TestSizeBytes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := SizeBytes(16, 8)
		assert.NoError(t, err)
		assert.Equal(t, int64(128), got)
	})

	t.Run("zero-sized elements", func(t *testing.T) {
		got, err := SizeBytes(1024, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("invalid negative count", func(t *testing.T) {
		_, err := SizeBytes(-1, 8)
		assert.Error(t, err)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := SizeBytes(math.MaxInt, 8)
		assert.Error(t, err)
	})
}
