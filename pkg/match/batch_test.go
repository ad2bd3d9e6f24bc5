package match

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAll(t *testing.T) {
	pairs := []Pair{
		{A: "가", B: "나"},
		{A: "", B: ""},
		{A: "장하은", B: "김운학"},
		{A: "a", B: "b"},
	}

	items, err := ComputeAll(context.Background(), pairs, 2)
	require.NoError(t, err)
	require.Len(t, items, len(pairs))

	for i, item := range items {
		assert.Equal(t, pairs[i], item.Pair)
	}

	require.NotNil(t, items[0].Result)
	assert.Equal(t, 8, items[0].Result.Score)
	assert.Nil(t, items[1].Result)
	assert.Equal(t, ErrInsufficientInput.Error(), items[1].Warning)
	require.NotNil(t, items[2].Result)
	assert.Equal(t, 8, items[2].Result.Score)
	require.NotNil(t, items[3].Result)
	assert.Equal(t, 0, items[3].Result.Score)
}

func TestComputeAll_MatchesSequential(t *testing.T) {
	pairs := make([]Pair, 0, 50)
	for i := 0; i < 50; i++ {
		pairs = append(pairs, Pair{A: fmt.Sprintf("김%c", '가'+rune(i*37)), B: "이서연"})
	}

	items, err := ComputeAll(context.Background(), pairs, 0, WithLetters())
	require.NoError(t, err)

	for i, p := range pairs {
		want, err := Compute(p.A, p.B, WithLetters())
		require.NoError(t, err)
		assert.Equal(t, want, items[i].Result)
	}
}

func TestComputeAll_Empty(t *testing.T) {
	items, err := ComputeAll(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestComputeAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := ComputeAll(ctx, []Pair{{A: "가", B: "나"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, items)
}
