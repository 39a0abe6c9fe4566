package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vinhson/vinhson-web/internal/platform/health"
	"github.com/vinhson/vinhson-web/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
	if !health.Healthy(results) {
		t.Error("Healthy(empty) = false, want true")
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	cdn := mocks.NewMockHealthChecker(t)
	cdn.EXPECT().Name().Return("sanity-cdn")
	cdn.EXPECT().HealthCheck(mock.Anything).Return(nil)

	apiErr := errors.New("circuit breaker open")
	api := mocks.NewMockHealthChecker(t)
	api.EXPECT().Name().Return("sanity-api")
	api.EXPECT().HealthCheck(mock.Anything).Return(apiErr)

	r := health.New()
	r.Register(cdn)
	r.Register(api)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["sanity-cdn"] != nil {
		t.Errorf("sanity-cdn check = %v, want nil", results["sanity-cdn"])
	}
	if !errors.Is(results["sanity-api"], apiErr) {
		t.Errorf("sanity-api check = %v, want %v", results["sanity-api"], apiErr)
	}
	if health.Healthy(results) {
		t.Error("Healthy() = true with a failing check")
	}
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	// Each check blocks until both have started; sequential execution would
	// never release them.
	var started sync.WaitGroup
	started.Add(2)
	block := func(context.Context) error {
		started.Done()
		started.Wait()
		return nil
	}

	r := health.New()
	for _, name := range []string{"sanity-cdn", "sanity-api"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(block)
		r.Register(c)
	}

	done := make(chan map[string]error, 1)
	go func() { done <- r.CheckAll(context.Background()) }()

	select {
	case results := <-done:
		if !health.Healthy(results) {
			t.Errorf("results = %v, want healthy", results)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("CheckAll did not run checks concurrently")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("sanity-cdn")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["sanity-cdn"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["sanity-cdn"])
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := range goroutines {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
