// Package collection сводит загруженные списки сущностей с уже выбранными значениями.
package collection

// Identify извлекает идентификатор элемента. nil означает, что элемент не сохранен.
type Identify[T any] func(item T) *int64

// AddIfMissing добавляет в начало коллекции кандидатов, которых в ней еще нет.
//
// Отсутствующие (nil) кандидаты и кандидаты без идентификатора отбрасываются,
// дубликаты среди самих кандидатов тоже: выигрывает первое вхождение.
// Если после фильтрации кандидатов не осталось, возвращается исходный срез.
// Предполагается, что в existing нет повторяющихся идентификаторов.
func AddIfMissing[T comparable](existing []T, identify Identify[T], candidates ...T) []T {
	var zero T
	present := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if c != zero {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return existing
	}

	ids := make(map[int64]struct{}, len(existing)+len(present))
	for _, item := range existing {
		if id := identify(item); id != nil {
			ids[*id] = struct{}{}
		}
	}

	toAdd := make([]T, 0, len(present))
	for _, c := range present {
		id := identify(c)
		if id == nil {
			continue
		}
		if _, ok := ids[*id]; ok {
			continue
		}
		ids[*id] = struct{}{}
		toAdd = append(toAdd, c)
	}

	result := make([]T, 0, len(toAdd)+len(existing))
	result = append(result, toAdd...)
	return append(result, existing...)
}
