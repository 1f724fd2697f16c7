package client

import (
	"net/http"
	"strconv"
)

// TotalCountHeader - заголовок с общим количеством записей для пагинации
const TotalCountHeader = "X-Total-Count"

// Response - разобранное тело ответа вместе со статусом и заголовками
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       T
}

// TotalCount возвращает значение X-Total-Count. ok=false, если заголовка нет или он некорректен.
func (r *Response[T]) TotalCount() (int64, bool) {
	v := r.Header.Get(TotalCountHeader)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
