package openai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDiagnosisMetric_ConcurrentCallers(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recordDiagnosisMetric(context.Background(), "gpt-4o", 200, 10*time.Millisecond, nil)
			recordDiagnosisMetric(context.Background(), "gpt-4o", 500, time.Millisecond, errors.New("boom"))
			recordDiagnosisRateLimitWait(context.Background(), "gpt-4o", time.Millisecond)
		}()
	}
	wg.Wait()
}

func TestTokenBucket_BurstThenLazyRefill(t *testing.T) {
	bucket := newTokenBucketWithRate(60000, 2)
	ctx := context.Background()

	require.NoError(t, bucket.Wait(ctx))
	require.NoError(t, bucket.Wait(ctx))

	// Burst is drained; the next token comes from elapsed-time refill.
	require.NoError(t, bucket.Wait(ctx))
}

func TestTokenBucket_WaitHonorsContext(t *testing.T) {
	bucket := newTokenBucketWithRate(1, 1)
	require.NoError(t, bucket.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, bucket.Wait(ctx), context.DeadlineExceeded)
}
