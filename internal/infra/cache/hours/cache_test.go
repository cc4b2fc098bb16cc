package hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type fakeClient struct {
	data   map[string]string
	getErr error
	sets   int
	dels   []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.sets++
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	f.dels = append(f.dels, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fakeRepo struct {
	cfg   *domain.BusinessHoursConfig
	err   error
	gets  int
	saved *domain.BusinessHoursConfig
}

func (f *fakeRepo) Get(context.Context, int64) (*domain.BusinessHoursConfig, error) {
	f.gets++
	return f.cfg, f.err
}

func (f *fakeRepo) Upsert(_ context.Context, cfg *domain.BusinessHoursConfig) (*domain.BusinessHoursConfig, error) {
	f.saved = cfg
	return cfg, nil
}

type counter map[string]int

func (c counter) IncCacheLookup(result string) { c[result]++ }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func sampleHours() *domain.BusinessHoursConfig {
	cfg := domain.DefaultBusinessHours(7)
	cfg.StepMinutes = 15
	cfg.LunchStart = &domain.TimeOfDay{Hour: 12}
	cfg.LunchEnd = &domain.TimeOfDay{Hour: 13, Minute: 30}
	cfg.UpdatedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return &cfg
}

func TestCache_MissThenHit(t *testing.T) {
	client := newFakeClient()
	repo := &fakeRepo{cfg: sampleHours()}
	stats := counter{}
	cache := New(client, repo, time.Minute, stats, nopLogger{})

	first, err := cache.Get(context.Background(), 7)
	require.NoError(t, err)
	second, err := cache.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, client.sets)
	assert.Equal(t, 1, stats[resultMiss])
	assert.Equal(t, 1, stats[resultHit])
	assert.Equal(t, first, second)
	assert.True(t, second.OpenWeekdays.Has(time.Saturday))
	assert.Equal(t, "13:30", second.LunchEnd.String())
}

func TestCache_RedisDownFallsBackToRepository(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	repo := &fakeRepo{cfg: sampleHours()}
	stats := counter{}

	cfg, err := New(client, repo, time.Minute, stats, nopLogger{}).Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.StepMinutes)
	assert.Equal(t, 1, stats[resultError])
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	client := newFakeClient()
	notFound := errors.New("not found")
	repo := &fakeRepo{err: notFound}

	_, err := New(client, repo, time.Minute, counter{}, nopLogger{}).Get(context.Background(), 7)
	assert.ErrorIs(t, err, notFound)
	assert.Zero(t, client.sets)
}

func TestCache_UndecodableEntryIsReplaced(t *testing.T) {
	client := newFakeClient()
	client.data[Key(7)] = "{broken"
	repo := &fakeRepo{cfg: sampleHours()}

	cfg, err := New(client, repo, time.Minute, counter{}, nopLogger{}).Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, int64(7), cfg.TenantID)
	assert.NotEqual(t, "{broken", client.data[Key(7)])
}

func TestCache_UpsertInvalidates(t *testing.T) {
	client := newFakeClient()
	client.data[Key(7)] = "{}"
	repo := &fakeRepo{}

	_, err := New(client, repo, time.Minute, counter{}, nopLogger{}).Upsert(context.Background(), sampleHours())
	require.NoError(t, err)

	assert.Equal(t, []string{"agenda:business_hours:7"}, client.dels)
	assert.NotNil(t, repo.saved)
	_, ok := client.data[Key(7)]
	assert.False(t, ok)
}
