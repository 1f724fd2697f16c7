package client

import (
	"context"
	"sync/atomic"
)

// Observer - обработчики результата асинхронного вызова. Любое поле может быть nil.
type Observer[T any] struct {
	Next  func(T)
	Error func(error)
	// Finally вызывается после завершения вызова в любом случае, в том числе после Unsubscribe
	Finally func()
}

// Subscription - выполняющийся асинхронный вызов
type Subscription struct {
	cancel context.CancelFunc
	closed atomic.Bool
	done   chan struct{}
}

// Subscribe запускает call в отдельной горутине и передает результат observer
func Subscribe[T any](ctx context.Context, call func(context.Context) (T, error), observer Observer[T]) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		defer cancel()
		if observer.Finally != nil {
			defer observer.Finally()
		}

		value, err := call(ctx)
		if s.closed.Load() {
			return
		}
		if err != nil {
			if observer.Error != nil {
				observer.Error(err)
			}
			return
		}
		if observer.Next != nil {
			observer.Next(value)
		}
	}()

	return s
}

// Unsubscribe отменяет контекст вызова и подавляет еще не начатые обработчики Next и Error.
// Запрос, уже принятый сервером, при этом не откатывается.
func (s *Subscription) Unsubscribe() {
	s.closed.Store(true)
	s.cancel()
}

// Done закрывается после завершения вызова и всех обработчиков
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Wait блокируется до завершения вызова
func (s *Subscription) Wait() {
	<-s.done
}
