package client

import (
	"context"
	"fmt"
	"net/http"
)

// resource - REST-ресурс с фиксированным базовым путем
type resource[T any] struct {
	client *Client
	path   string
}

func (r resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

func (r resource[T]) create(ctx context.Context, payload any) (*Response[T], error) {
	return send[T](ctx, r.client, http.MethodPost, r.path, nil, payload)
}

func (r resource[T]) update(ctx context.Context, id *int64, payload any) (*Response[T], error) {
	if id == nil {
		return nil, ErrMissingIdentifier
	}
	return send[T](ctx, r.client, http.MethodPut, r.itemPath(*id), nil, payload)
}

func (r resource[T]) find(ctx context.Context, id int64) (*Response[T], error) {
	return send[T](ctx, r.client, http.MethodGet, r.itemPath(id), nil, nil)
}

func (r resource[T]) query(ctx context.Context, opts *RequestOptions) (*Response[[]T], error) {
	resp, err := send[[]T](ctx, r.client, http.MethodGet, r.path, opts.Values(), nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		resp.Body = []T{}
	}
	return resp, nil
}

func (r resource[T]) delete(ctx context.Context, id int64) (*Response[struct{}], error) {
	return sendEmpty(ctx, r.client, http.MethodDelete, r.itemPath(id))
}
