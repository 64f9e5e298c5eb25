package calc_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestCalculateAllMatchesSequential(t *testing.T) {
	srcs := []string{"3 + 4 * 2", "(3 + 4) * 2", "2^3^2", "10 / 0", "3 +", "(3 + 4", "3 4", "-2^2"}
	for i := 0; i < 100; i++ {
		srcs = append(srcs, strconv.Itoa(i)+" * 2 - 1")
	}
	for _, workers := range []int{0, 1, 3, 64} {
		t.Run(strconv.Itoa(workers), func(t *testing.T) {
			res, err := calc.CalculateAll(context.Background(), srcs, calc.Workers(workers))
			require.NoError(t, err)
			require.Len(t, res, len(srcs))
			for i, src := range srcs {
				require.Equal(t, calc.Calculate(src), res[i], "result %d for %q", i, src)
			}
		})
	}
}

func TestCalculateAllEmpty(t *testing.T) {
	res, err := calc.CalculateAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestCalculateAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := calc.CalculateAll(ctx, []string{"1", "2", "3"}, calc.Workers(1))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
}

func TestCalculateAllCanceledAfterNothingLeft(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := calc.CalculateAll(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestCalculateAllNilOption(t *testing.T) {
	res, err := calc.CalculateAll(context.Background(), []string{"1+1"}, nil)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.True(t, res[0].OK)
	require.Equal(t, 2.0, res[0].Value)
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "\n \t\n\n", nil},
		{"one", "1+1", []string{"1+1"}},
		{"trailing-newline", "1+1\n", []string{"1+1"}},
		{"many", "1+1\n\n  2*3 \n(4", []string{"1+1", "  2*3 ", "(4"}},
		{"crlf", "1\r\n2\r\n", []string{"1\r", "2\r"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, calc.SplitLines(c.text))
		})
	}
}
