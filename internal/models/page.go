package models

// PageRequest - параметры постраничного запроса списка. Page считается с нуля.
type PageRequest struct {
	Page int
	Size int
	Sort []string
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize приводит некорректные значения к значениям по умолчанию
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset возвращает смещение первой записи страницы
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
