package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeManager records cache traffic so tests can assert on hit and fill
// behaviour without a real store.
type fakeManager struct {
	values map[string][]matchSpan
	sets   int
}

func newFakeManager() *fakeManager {
	return &fakeManager{values: map[string][]matchSpan{}}
}

func (f *fakeManager) Get(ctx context.Context, key string) ([]matchSpan, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeManager) Set(ctx context.Context, key string, value []matchSpan, ttl time.Duration) {
	f.values[key] = value
	f.sets++
}

func (f *fakeManager) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeManager) Flush(ctx context.Context) error {
	f.values = map[string][]matchSpan{}
	return nil
}

type patternInput struct {
	pattern string
}

func scanFn(calls *int, result []matchSpan, err error) func(context.Context, patternInput) ([]matchSpan, error) {
	return func(ctx context.Context, input patternInput) ([]matchSpan, error) {
		*calls++
		return result, err
	}
}

func TestReadThroughCache_BypassAlwaysComputes(t *testing.T) {
	manager := newFakeManager()
	calls := 0
	rtc := NewReadThroughCache[string, []matchSpan, patternInput](
		manager, scanFn(&calls, []matchSpan{{End: 6}}, nil), true)

	for i := 0; i < 2; i++ {
		got, err := rtc.Get(context.Background(), "select", patternInput{pattern: "select"}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, []matchSpan{{End: 6}}, got)
	}

	require.Equal(t, 2, calls, "bypass should recompute every call")
	require.Zero(t, manager.sets, "bypass should never fill the cache")
}

func TestReadThroughCache_MissComputesAndFills(t *testing.T) {
	manager := newFakeManager()
	calls := 0
	rtc := NewReadThroughCache[string, []matchSpan, patternInput](
		manager, scanFn(&calls, []matchSpan{{End: 6}}, nil), false)

	got, err := rtc.Get(context.Background(), "select", patternInput{pattern: "select"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []matchSpan{{End: 6}}, got)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, manager.sets)
}

func TestReadThroughCache_HitSkipsCompute(t *testing.T) {
	manager := newFakeManager()
	manager.values["select"] = []matchSpan{{End: 3}}
	calls := 0
	rtc := NewReadThroughCache[string, []matchSpan, patternInput](
		manager, scanFn(&calls, []matchSpan{{End: 6}}, nil), false)

	got, err := rtc.Get(context.Background(), "select", patternInput{pattern: "select"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []matchSpan{{End: 3}}, got, "a hit should win over the compute function")
	require.Zero(t, calls)
}

func TestReadThroughCache_ComputeErrorNotCached(t *testing.T) {
	manager := newFakeManager()
	calls := 0
	rtc := NewReadThroughCache[string, []matchSpan, patternInput](
		manager, scanFn(&calls, nil, errors.New("bad pattern")), false)

	_, err := rtc.Get(context.Background(), "[oops", patternInput{pattern: "[oops"}, time.Minute)
	require.Error(t, err)
	require.Zero(t, manager.sets, "errors should not be cached")

	_, err = rtc.Get(context.Background(), "[oops", patternInput{pattern: "[oops"}, time.Minute)
	require.Error(t, err)
	require.Equal(t, 2, calls, "each call should retry after an error")
}
