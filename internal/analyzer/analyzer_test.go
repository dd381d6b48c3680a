package analyzer

import (
	"errors"
	"math"
	"strconv"
	"testing"

	hderrors "github.com/hashdist/hashdist/internal/errors"
	"github.com/hashdist/hashdist/pkg/hashfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWords(n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, "word"+strconv.Itoa(i))
	}
	return words
}

func TestAnalyzeLoseLose(t *testing.T) {
	r, err := Analyze([]string{"cat", "dog", "bird"}, "loselose", hashfn.LoseLose, 26, 5)
	require.NoError(t, err)

	// cat=312, dog=314, bird=417
	assert.Equal(t, []int{0, 2, 1}, r.Indices)
	assert.Equal(t, 0, r.Collisions)

	labels := make([]string, 0, len(r.Histogram))
	for _, rg := range r.Histogram {
		labels = append(labels, rg.Label)
	}
	assert.Equal(t, []string{"0-5", "5-10", "10-15", "15-20", "20-25", "25-30"}, labels)
	assert.Equal(t, 3, r.Histogram[0].Count)
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, "3 words against loselose hash function | buckets=26 -- step=5", r.Title())
}

func TestCollisionsCountedPerWord(t *testing.T) {
	for _, name := range hashfn.Names() {
		r, err := Analyze([]string{"a", "a", "b"}, name, hashfn.Must(name), 10, 1)
		require.NoError(t, err)
		if r.Indices[2] == r.Indices[0] {
			assert.Equal(t, 3, r.Collisions, name)
		} else {
			assert.Equal(t, 2, r.Collisions, name)
		}
	}

	r, err := Analyze([]string{"a", "a", "b"}, "loselose", hashfn.LoseLose, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Collisions)
	assert.Equal(t, 2, r.MaxBucketLoad())
	assert.Equal(t, 2, r.UsedBuckets())
}

func TestThreeWordBucket(t *testing.T) {
	// 同字母异序词在 myhash 下必然冲突
	r, err := Analyze([]string{"abc", "bca", "cab", "z"}, "myhash", hashfn.MyHash, 1000, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Collisions)
	assert.Equal(t, 3, r.MaxBucketLoad())
}

func TestInvariants(t *testing.T) {
	words := testWords(500)
	for _, name := range hashfn.Names() {
		for _, tc := range []struct{ buckets, step int }{{1, 1}, {7, 3}, {26, 5}, {100, 10}, {97, 200}, {1024, 1}} {
			r, err := Analyze(words, name, hashfn.Must(name), tc.buckets, tc.step)
			require.NoError(t, err)
			for _, idx := range r.Indices {
				assert.True(t, idx >= 0 && idx < tc.buckets, "%s: index %d out of range", name, idx)
			}
			assert.Equal(t, len(words), r.Total())
			assert.True(t, r.Collisions >= 0 && r.Collisions <= len(words))
			assert.Equal(t, (tc.buckets+tc.step-1)/tc.step, len(r.Histogram))
			assert.Equal(t, 0, r.Histogram[0].Start)
		}
	}
}

func TestDeterministic(t *testing.T) {
	words := testWords(200)
	a, err := Analyze(words, "sdbm", hashfn.SDBM, 64, 8)
	require.NoError(t, err)
	b, err := Analyze(words, "sdbm", hashfn.SDBM, 64, 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStepLargerThanBuckets(t *testing.T) {
	r, err := Analyze([]string{"x", "y"}, "djb2", hashfn.DJB2, 3, 10)
	require.NoError(t, err)
	require.Len(t, r.Histogram, 1)
	assert.Equal(t, "0-10", r.Histogram[0].Label)
	assert.Equal(t, 2, r.Histogram[0].Count)
}

func TestEmptyWords(t *testing.T) {
	r, err := Analyze(nil, "djb2", hashfn.DJB2, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Collisions)
	assert.Equal(t, 0, r.Total())
	assert.Len(t, r.Histogram, 2)
}

func TestInvalidArgs(t *testing.T) {
	_, err := Analyze([]string{"a"}, "djb2", hashfn.DJB2, 0, 1)
	assert.True(t, errors.Is(err, hderrors.ErrInvalidBuckets))

	_, err = Analyze([]string{"a"}, "djb2", hashfn.DJB2, 10, -1)
	assert.True(t, errors.Is(err, hderrors.ErrInvalidStep))
}

func TestBucket(t *testing.T) {
	assert.Equal(t, 3, Bucket(13, 10))
	assert.Equal(t, 7, Bucket(-3, 10))
	assert.Equal(t, 0, Bucket(-10, 10))
	assert.Equal(t, 0, Bucket(0, 1))
	b := Bucket(math.MinInt64, 26)
	assert.True(t, b >= 0 && b < 26)
}

func TestStepDividesBuckets(t *testing.T) {
	r, err := Analyze(testWords(50), "djb2", hashfn.DJB2, 10, 5)
	require.NoError(t, err)
	require.Len(t, r.Histogram, 2)
	assert.Equal(t, "0-5", r.Histogram[0].Label)
	assert.Equal(t, "5-10", r.Histogram[1].Label)
	assert.Equal(t, 50, r.Total())
}
