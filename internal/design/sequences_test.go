package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilterwhite/ingeo-structures-sub002/internal/rebar"
)

func TestBoundarySequenceStrictlyAscending(t *testing.T) {
	for i := 1; i < len(BoundarySequence); i++ {
		prev := BoundarySequence[i-1]
		cur := BoundarySequence[i]
		assert.Greater(t, cur.AreaPerEnd(), prev.AreaPerEnd(),
			"entry %d (%d%s) must deliver more steel than entry %d (%d%s)",
			i, cur.Count, cur.Bar, i-1, prev.Count, prev.Bar)
	}
}

func TestMeshSpacingSequenceDescending(t *testing.T) {
	for i := 1; i < len(MeshSpacingSequence); i++ {
		assert.Less(t, MeshSpacingSequence[i], MeshSpacingSequence[i-1])
	}
}

func TestMeshBarSequenceAscending(t *testing.T) {
	for i := 1; i < len(MeshBarSequence); i++ {
		assert.Greater(t, MeshBarSequence[i].Area(), MeshBarSequence[i-1].Area())
	}
}

func TestThicknessSequenceAscending(t *testing.T) {
	for i := 1; i < len(ThicknessSequence); i++ {
		assert.Greater(t, ThicknessSequence[i], ThicknessSequence[i-1])
	}
}

func TestBoundaryStart(t *testing.T) {
	// 2φ10 = 157 mm² per end sits below the whole table.
	assert.Equal(t, 0, boundaryStart(2*rebar.Bar10.Area()))

	// 2φ16 = 402 mm² matches entry 1 exactly; the upgrade search starts
	// strictly above it.
	assert.Equal(t, 2, boundaryStart(BoundarySequence[1].AreaPerEnd()))

	// Beyond the heaviest arrangement the table is exhausted.
	assert.Equal(t, len(BoundarySequence), boundaryStart(BoundarySequence[len(BoundarySequence)-1].AreaPerEnd()))
}

func TestBoundaryIndex(t *testing.T) {
	assert.Equal(t, -1, boundaryIndex(100))
	assert.Equal(t, 0, boundaryIndex(BoundarySequence[0].AreaPerEnd()))
	assert.Equal(t, 6, boundaryIndex(4*rebar.Bar20.Area()))
	assert.Equal(t, len(BoundarySequence)-1, boundaryIndex(1e6))
}

func TestSpacingIndex(t *testing.T) {
	assert.Equal(t, 0, spacingIndex(400))
	assert.Equal(t, 0, spacingIndex(500)) // wider than the table starts at the top
	assert.Equal(t, 3, spacingIndex(250))
	assert.Equal(t, 6, spacingIndex(100))
	assert.Equal(t, 6, spacingIndex(75)) // tighter than the table clamps to the end
}

func TestMeshBarIndex(t *testing.T) {
	assert.Equal(t, 0, meshBarIndex(rebar.Bar8))
	assert.Equal(t, 4, meshBarIndex(rebar.Bar20))
	assert.Equal(t, len(MeshBarSequence)-1, meshBarIndex(rebar.Bar25))
}

func TestThicknessStart(t *testing.T) {
	assert.Equal(t, 3, thicknessStart(250, 250)) // first entry strictly above 250
	assert.Equal(t, 3, thicknessStart(250, 300)) // floor coincides with the next entry
	assert.Equal(t, 4, thicknessStart(250, 350)) // floor skips entries
	assert.Equal(t, len(ThicknessSequence), thicknessStart(600, 600))
}

func TestMaxLegsFor(t *testing.T) {
	tests := []struct {
		thickness float64
		want      int
	}{
		{150, 2}, // below one leg per 100 mm, clamped up
		{250, 2},
		{300, 3},
		{350, 3},
		{400, 4},
		{600, 4}, // clamped to the largest table entry
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxLegsFor(tt.thickness), "t=%.0f", tt.thickness)
	}
}

func TestCartesianCoversAllTuples(t *testing.T) {
	c := newCartesian(2, 3)

	var got [][]int
	for idx, ok := c.next(); ok; idx, ok = c.next() {
		got = append(got, idx)
	}

	want := [][]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	assert.Equal(t, want, got)

	// Exhausted iterators stay exhausted.
	_, ok := c.next()
	assert.False(t, ok)
}

func TestCartesianTuplesAreIndependent(t *testing.T) {
	c := newCartesian(2, 2)
	first, ok := c.next()
	assert.True(t, ok)
	second, ok := c.next()
	assert.True(t, ok)

	// Advancing the iterator must not alias previously returned tuples.
	assert.Equal(t, []int{0, 0}, first)
	assert.Equal(t, []int{0, 1}, second)
}

func TestCartesianEmptyDimension(t *testing.T) {
	c := newCartesian(3, 0, 2)
	_, ok := c.next()
	assert.False(t, ok)
}
