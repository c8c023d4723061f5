// Package store хранит последние измерения Web Vitals по страницам в памяти процесса
package store

import (
	"sync"

	"perf-policy-service/internal/models"
)

// MetricsStore потокобезопасное хранилище измерений по ключу страницы.
// Последняя запись по ключу побеждает, вытеснения нет.
type MetricsStore struct {
	mu      sync.RWMutex
	samples map[string]models.MetricsSample
}

// NewMetricsStore создает пустое хранилище
func NewMetricsStore() *MetricsStore {
	return &MetricsStore{
		samples: make(map[string]models.MetricsSample),
	}
}

// Record сохраняет измерение, перезаписывая предыдущее для ключа
func (s *MetricsStore) Record(pageKey string, sample models.MetricsSample) {
	s.mu.Lock()
	s.samples[pageKey] = sample
	s.mu.Unlock()
}

// Get возвращает измерение страницы; ok == false, если его нет
func (s *MetricsStore) Get(pageKey string) (models.MetricsSample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sample, ok := s.samples[pageKey]
	return sample, ok
}

// GetAll возвращает копию всех измерений
func (s *MetricsStore) GetAll() map[string]models.MetricsSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]models.MetricsSample, len(s.samples))
	for k, v := range s.samples {
		snapshot[k] = v
	}
	return snapshot
}

// Len возвращает количество страниц в хранилище
func (s *MetricsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.samples)
}

// Clear очищает хранилище (только для тестов)
func (s *MetricsStore) Clear() {
	s.mu.Lock()
	s.samples = make(map[string]models.MetricsSample)
	s.mu.Unlock()
}
