// Package analytics реализует оценку Core Web Vitals и статистику оценок.
// Включает скользящее окно оценок и z-score для детекции регрессий.
package analytics

import (
	"math"
	"sync"
)

const (
	// WindowSize размер окна оценок по умолчанию (50 измерений)
	WindowSize = 50
	// ZScoreThreshold порог регрессии оценки (ниже -2σ)
	ZScoreThreshold = 2.0
	// minSamplesForRegression минимум измерений в окне до детекции регрессий
	minSamplesForRegression = 10
)

// SlidingWindow реализует скользящее окно для хранения значений
type SlidingWindow struct {
	values []float64
	size   int
	index  int
	count  int
	sum    float64
	sumSq  float64
}

// NewSlidingWindow создает новое скользящее окно заданного размера
func NewSlidingWindow(size int) *SlidingWindow {
	if size < 1 {
		size = 1
	}
	return &SlidingWindow{
		values: make([]float64, size),
		size:   size,
	}
}

// Add добавляет новое значение в окно
func (sw *SlidingWindow) Add(value float64) {
	if sw.count >= sw.size {
		// Удаляем старое значение из статистики
		oldValue := sw.values[sw.index]
		sw.sum -= oldValue
		sw.sumSq -= oldValue * oldValue
	} else {
		sw.count++
	}

	sw.values[sw.index] = value
	sw.sum += value
	sw.sumSq += value * value

	sw.index = (sw.index + 1) % sw.size
}

// Mean возвращает среднее значение (rolling average)
func (sw *SlidingWindow) Mean() float64 {
	if sw.count == 0 {
		return 0
	}
	return sw.sum / float64(sw.count)
}

// StdDev возвращает стандартное отклонение
func (sw *SlidingWindow) StdDev() float64 {
	if sw.count < 2 {
		return 0
	}
	n := float64(sw.count)
	variance := (sw.sumSq - (sw.sum*sw.sum)/n) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// ZScore вычисляет z-score для заданного значения
func (sw *SlidingWindow) ZScore(value float64) float64 {
	stdDev := sw.StdDev()
	if stdDev == 0 {
		return 0
	}
	return (value - sw.Mean()) / stdDev
}

// Count возвращает количество элементов в окне
func (sw *SlidingWindow) Count() int {
	return sw.count
}

// Size возвращает емкость окна
func (sw *SlidingWindow) Size() int {
	return sw.size
}

// ScoreObservation результат учета одной оценки
type ScoreObservation struct {
	RollingScore float64
	ZScore       float64
	Regression   bool
}

// ScoreTracker ведет скользящую статистику оценок Web Vitals.
// Безопасен для конкурентного использования.
type ScoreTracker struct {
	mu     sync.RWMutex
	window *SlidingWindow
}

// NewScoreTracker создает трекер с окном заданного размера
func NewScoreTracker(windowSize int) *ScoreTracker {
	return &ScoreTracker{window: NewSlidingWindow(windowSize)}
}

// Observe учитывает оценку. Z-score считается до добавления значения в окно,
// регрессия фиксируется, когда оценка ниже среднего более чем на 2σ.
func (t *ScoreTracker) Observe(score int) ScoreObservation {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := float64(score)
	z := t.window.ZScore(v)
	regression := t.window.Count() >= minSamplesForRegression && z < -ZScoreThreshold

	t.window.Add(v)

	return ScoreObservation{
		RollingScore: t.window.Mean(),
		ZScore:       z,
		Regression:   regression,
	}
}

// Stats возвращает текущее среднее, стандартное отклонение и число оценок
func (t *ScoreTracker) Stats() (mean, stdDev float64, count int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.window.Mean(), t.window.StdDev(), t.window.Count()
}

// WindowSize возвращает емкость окна трекера
func (t *ScoreTracker) WindowSize() int {
	return t.window.Size()
}
