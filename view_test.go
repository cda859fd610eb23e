package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMatchesPackageLevelGet(t *testing.T) {
	for _, tag := range allTags {
		src := genRandomBounded(200, 5000, 17)
		packed, err := Compress(tag, src)
		require.NoError(t, err)

		v := NewView()
		require.NoError(t, v.Load(packed))
		assert.True(t, v.IsLoaded())
		assert.Equal(t, len(src), v.Len())
		assert.Equal(t, tag, v.Codec())

		for i, want := range src {
			got, err := v.Get(i)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			pkgGot, err := Get(packed, i)
			require.NoError(t, err)
			assert.Equal(t, pkgGot, got)
		}
	}
}

func TestViewDecodeMatchesDecompress(t *testing.T) {
	src := genRandomBounded(300, 70000, 5)
	packed, err := Compress(TagOutlier, src)
	require.NoError(t, err)

	v := NewView()
	require.NoError(t, v.Load(packed))

	viaView, err := v.Decode(nil)
	require.NoError(t, err)

	viaPackage := make([]int64, len(src))
	require.NoError(t, Decompress(packed, viaPackage))

	assert.Equal(t, viaPackage, viaView)
}

func TestViewSequentialIteration(t *testing.T) {
	src := []int64{5, 4, 3, 2, 1, 0}
	packed, err := Compress(TagWordAligned, src)
	require.NoError(t, err)

	v := NewView()
	require.NoError(t, v.Load(packed))

	var got []int64
	for {
		val, pos, ok := v.Next()
		if !ok {
			break
		}
		assert.Equal(t, len(got), pos)
		got = append(got, val)
	}
	assert.Equal(t, src, got)

	v.Reset()
	assert.Equal(t, 0, v.Pos())
	val, pos, ok := v.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, pos)
	assert.Equal(t, src[0], val)
}

func TestViewOperationsBeforeLoadFail(t *testing.T) {
	v := NewView()
	assert.False(t, v.IsLoaded())

	_, err := v.Get(0)
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = v.Decode(nil)
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, _, ok := v.Next()
	assert.False(t, ok)
}

func TestViewLoadRejectsBadMagic(t *testing.T) {
	packed, err := Compress(TagContiguous, []int64{1, 2, 3})
	require.NoError(t, err)
	packed[0] ^= 1

	v := NewView()
	err = v.Load(packed)
	assert.ErrorIs(t, err, ErrBadMagic)
	assert.False(t, v.IsLoaded())
}
