package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SeqToSlice(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ToSlice(ctx, Seq(ctx, 5)))
	assert.Equal(t, []int{}, ToSlice(ctx, Seq(ctx, 0)))
}

func Test_Take(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Equal(t, []int{0, 1, 2}, ToSlice(ctx, Take(ctx, 3, Seq(ctx, 100))))
	assert.Equal(t, []int{0, 1}, ToSlice(ctx, Take(ctx, 10, Seq(ctx, 2))))
}

func Test_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := ToSlice(ctx, Seq(ctx, 1000))
	assert.Less(t, len(got), 1000)
}
