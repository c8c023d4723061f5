package policy

import (
	"fmt"

	"github.com/docker/go-units"
)

// BudgetStatus результат проверки размера против бюджета
type BudgetStatus string

const (
	BudgetOK      BudgetStatus = "ok"
	BudgetWarning BudgetStatus = "warning"
	BudgetError   BudgetStatus = "error"
)

// Budget потолки размера для категории ассетов
type Budget struct {
	Type           string `json:"type"`
	MaximumWarning string `json:"maximumWarning"`
	MaximumError   string `json:"maximumError"`
}

// BudgetDocument набор бюджетов для проверки сборки
type BudgetDocument struct {
	Budgets []Budget `json:"budgets"`
}

// GetPerformanceBudget возвращает фиксированный бюджет производительности
func GetPerformanceBudget() BudgetDocument {
	return BudgetDocument{
		Budgets: []Budget{
			{Type: "initial", MaximumWarning: "500kb", MaximumError: "1mb"},
			{Type: "allScript", MaximumWarning: "300kb", MaximumError: "500kb"},
			{Type: "all", MaximumWarning: "2mb", MaximumError: "5mb"},
			{Type: "anyComponentStyle", MaximumWarning: "50kb", MaximumError: "100kb"},
		},
	}
}

// Find возвращает бюджет по типу
func (d BudgetDocument) Find(budgetType string) (Budget, bool) {
	for _, b := range d.Budgets {
		if b.Type == budgetType {
			return b, true
		}
	}
	return Budget{}, false
}

// Check сравнивает размер в байтах с порогами бюджета указанного типа
func (d BudgetDocument) Check(budgetType string, sizeBytes int64) (BudgetStatus, error) {
	b, ok := d.Find(budgetType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBudgetType, budgetType)
	}
	return b.Check(sizeBytes)
}

// Check сравнивает размер в байтах с порогами бюджета.
// Размеры двоичные: 1kb = 1024 байта.
func (b Budget) Check(sizeBytes int64) (BudgetStatus, error) {
	errLimit, err := ParseBudgetSize(b.MaximumError)
	if err != nil {
		return "", err
	}
	warnLimit, err := ParseBudgetSize(b.MaximumWarning)
	if err != nil {
		return "", err
	}

	switch {
	case sizeBytes > errLimit:
		return BudgetError, nil
	case sizeBytes > warnLimit:
		return BudgetWarning, nil
	default:
		return BudgetOK, nil
	}
}

// ParseBudgetSize переводит строку вида "500kb" в байты
func ParseBudgetSize(size string) (int64, error) {
	n, err := units.RAMInBytes(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidBudgetSize, size, err)
	}
	return n, nil
}
