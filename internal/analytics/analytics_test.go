package analytics

import (
	"math"
	"sync"
	"testing"
)

func TestSlidingWindow_Add(t *testing.T) {
	sw := NewSlidingWindow(5)

	for _, v := range []float64{10, 20, 30, 40, 50} {
		sw.Add(v)
	}

	if sw.Count() != 5 {
		t.Errorf("Expected count 5, got %d", sw.Count())
	}

	if math.Abs(sw.Mean()-30.0) > 0.001 {
		t.Errorf("Expected mean 30, got %.2f", sw.Mean())
	}
}

func TestSlidingWindow_RollingBehavior(t *testing.T) {
	sw := NewSlidingWindow(3)

	sw.Add(10)
	sw.Add(20)
	sw.Add(30)

	if math.Abs(sw.Mean()-20.0) > 0.001 {
		t.Errorf("Expected mean 20, got %.2f", sw.Mean())
	}

	// Pushes out 10: (20+30+40)/3 = 30
	sw.Add(40)

	if math.Abs(sw.Mean()-30.0) > 0.001 {
		t.Errorf("Expected mean 30, got %.2f", sw.Mean())
	}
	if sw.Count() != 3 {
		t.Errorf("Expected count to stay at 3, got %d", sw.Count())
	}
}

func TestSlidingWindow_StdDev(t *testing.T) {
	sw := NewSlidingWindow(5)
	for i := 0; i < 5; i++ {
		sw.Add(50)
	}
	if sw.StdDev() != 0 {
		t.Errorf("Expected stddev 0 for identical values, got %.2f", sw.StdDev())
	}

	// Sample stddev of [2,4,4,4,5] is sqrt(1.2) ≈ 1.095
	sw2 := NewSlidingWindow(5)
	for _, v := range []float64{2, 4, 4, 4, 5} {
		sw2.Add(v)
	}
	if math.Abs(sw2.StdDev()-math.Sqrt(1.2)) > 0.001 {
		t.Errorf("Expected stddev 1.095, got %.3f", sw2.StdDev())
	}
}

func TestSlidingWindow_ZScore(t *testing.T) {
	sw := NewSlidingWindow(WindowSize)
	for i := 0; i < WindowSize; i++ {
		sw.Add(90)
	}

	// Zero stddev yields zero z-score
	if z := sw.ZScore(10); z != 0 {
		t.Errorf("Expected z-score 0 with zero stddev, got %.2f", z)
	}

	sw2 := NewSlidingWindow(WindowSize)
	for i := 0; i < WindowSize; i++ {
		sw2.Add(float64(80 + i%20))
	}
	if z := sw2.ZScore(10); z > -ZScoreThreshold {
		t.Errorf("Expected strongly negative z-score for outlier, got %.2f", z)
	}
}

func TestSlidingWindow_MinimumSize(t *testing.T) {
	sw := NewSlidingWindow(0)
	sw.Add(5)
	sw.Add(7)
	if sw.Size() != 1 || sw.Count() != 1 || sw.Mean() != 7 {
		t.Errorf("Expected single-slot window holding 7, got size=%d count=%d mean=%.2f",
			sw.Size(), sw.Count(), sw.Mean())
	}
}

func TestScoreTracker_Regression(t *testing.T) {
	tracker := NewScoreTracker(WindowSize)

	// Warm up with scores between 88 and 100
	for i := 0; i < 30; i++ {
		obs := tracker.Observe(88 + i%13)
		if obs.Regression {
			t.Fatalf("Unexpected regression during warmup at %d (z=%.2f)", i, obs.ZScore)
		}
	}

	obs := tracker.Observe(20)
	if !obs.Regression {
		t.Errorf("Expected regression for score 20, z-score %.2f", obs.ZScore)
	}

	obs = tracker.Observe(100)
	if obs.Regression {
		t.Errorf("High score must not be a regression, z-score %.2f", obs.ZScore)
	}
}

func TestScoreTracker_NoRegressionBeforeWarmup(t *testing.T) {
	tracker := NewScoreTracker(WindowSize)
	tracker.Observe(100)
	tracker.Observe(98)
	if obs := tracker.Observe(0); obs.Regression {
		t.Error("Regression must not be flagged before the window warms up")
	}
}

func TestScoreTracker_Concurrency(t *testing.T) {
	tracker := NewScoreTracker(100)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Observe(50 + workerID*10 + j%10)
			}
		}(w)
	}
	wg.Wait()

	mean, stdDev, count := tracker.Stats()
	if count != 100 {
		t.Errorf("Expected window to be full (100), got %d", count)
	}
	if mean < 50 || mean > 90 {
		t.Errorf("Rolling mean out of range: %.2f", mean)
	}
	t.Logf("Stats after concurrent observations - mean: %.2f, stddev: %.2f", mean, stdDev)
}

func BenchmarkSlidingWindowAdd(b *testing.B) {
	sw := NewSlidingWindow(WindowSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sw.Add(float64(i % 100))
	}
}
