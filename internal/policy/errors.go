// Package policy генерирует детерминированные политики доставки: параметры
// изображений, заголовки кэширования, Link-подсказки, политику service worker
// и бюджет производительности. Все функции чистые и безопасны для
// конкурентного вызова.
package policy

import "errors"

var (
	// ErrUnknownAssetClass класс ассетов не входит в закрытый набор
	ErrUnknownAssetClass = errors.New("unknown asset class")
	// ErrUnknownContentClass класс контента не входит в закрытый набор
	ErrUnknownContentClass = errors.New("unknown content class")
	// ErrInvalidBudgetSize размер бюджета не удалось разобрать
	ErrInvalidBudgetSize = errors.New("invalid budget size")
	// ErrUnknownBudgetType тип бюджета отсутствует в документе
	ErrUnknownBudgetType = errors.New("unknown budget type")
)
