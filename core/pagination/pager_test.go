package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages serves the given pages in order, keyed "p1", "p2", ...
type fakePages struct {
	pages [][]string
	calls int
	keys  []string
}

func (f *fakePages) fetch(ctx context.Context, pageKey string) ([]string, string, error) {
	f.calls++
	f.keys = append(f.keys, pageKey)

	idx := 0
	if pageKey != "" {
		if _, err := fmt.Sscanf(pageKey, "p%d", &idx); err != nil {
			return nil, "", err
		}
	}
	next := ""
	if idx+1 < len(f.pages) {
		next = fmt.Sprintf("p%d", idx+1)
	}
	return f.pages[idx], next, nil
}

func TestDrain_ExactlyNCalls(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d pages", n), func(t *testing.T) {
			f := &fakePages{}
			var expected []string
			for i := 0; i < n; i++ {
				page := []string{fmt.Sprintf("0xA|%d", 2*i), fmt.Sprintf("0xA|%d", 2*i+1)}
				f.pages = append(f.pages, page)
				expected = append(expected, page...)
			}

			p := New(f.fetch, Config{})
			items, err := Drain(context.Background(), p)
			require.NoError(t, err)

			assert.Equal(t, n, f.calls)
			assert.Equal(t, n, p.Pages())
			assert.Equal(t, expected, items, "items must keep cursor order")
			assert.Equal(t, "", f.keys[0], "first page is fetched without a cursor")
		})
	}
}

func TestPager_NonRestartable(t *testing.T) {
	f := &fakePages{pages: [][]string{{"a"}}}
	p := New(f.fetch, Config{})

	items, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
	assert.True(t, p.Done())

	_, err = p.Next(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, f.calls, "exhausted pager must not call upstream again")
}

func TestPager_Overrun(t *testing.T) {
	calls := 0
	endless := func(ctx context.Context, pageKey string) ([]int, string, error) {
		calls++
		return []int{calls}, fmt.Sprintf("k%d", calls), nil
	}

	p := New(endless, Config{MaxPages: 3})
	_, err := Drain(context.Background(), p)

	var overrun *OverrunError
	require.ErrorAs(t, err, &overrun)
	assert.Equal(t, 3, overrun.MaxPages)
	assert.Equal(t, "k3", overrun.NextPageKey)
	assert.Equal(t, 3, calls)
}

func TestPager_ErrorIsSticky(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := func(ctx context.Context, pageKey string) ([]string, string, error) {
		calls++
		if pageKey == "" {
			return []string{"a"}, "next", nil
		}
		return nil, "", boom
	}

	p := New(failing, Config{})
	_, err := Drain(context.Background(), p)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "page 2")

	_, err = p.Next(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNew_DefaultMaxPages(t *testing.T) {
	p := New(func(ctx context.Context, pageKey string) ([]string, string, error) {
		return nil, "", nil
	}, Config{MaxPages: 0})
	assert.Equal(t, DefaultMaxPages, p.config.MaxPages)
}
