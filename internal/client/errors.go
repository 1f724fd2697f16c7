package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound сопоставляется с HTTPError со статусом 404
	ErrNotFound = errors.New("client: entity not found")
	// ErrMissingIdentifier - попытка обновить сущность без идентификатора
	ErrMissingIdentifier = errors.New("client: entity has no identifier")
	// ErrNilEntity - попытка создать сущность без тела
	ErrNilEntity = errors.New("client: entity is nil")
)

// HTTPError - ответ сервера с неуспешным статусом
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("client: %s %s returned %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if len(e.Body) > 0 {
		msg += ": " + string(e.Body)
	}
	return msg
}

// Is позволяет проверять errors.Is(err, ErrNotFound)
func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
