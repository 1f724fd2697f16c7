package models

import "errors"

var (
	// ErrNotFound - запись с указанным идентификатором не существует
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidReference - обращение ссылается на несуществующую категорию или учреждение
	ErrInvalidReference = errors.New("invalid reference")
)
