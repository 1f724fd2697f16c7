package client

import (
	"net/url"
	"strconv"
)

// RequestOptions - параметры запроса списка: пагинация, сортировка и произвольные фильтры
type RequestOptions struct {
	Page    *int
	Size    *int
	Sort    []string
	Filters map[string][]string
}

// Paged возвращает параметры для страницы page размером size
func Paged(page, size int) *RequestOptions {
	return &RequestOptions{Page: &page, Size: &size}
}

// WithSort добавляет критерий сортировки, например "title,asc"
func (o *RequestOptions) WithSort(sort ...string) *RequestOptions {
	o.Sort = append(o.Sort, sort...)
	return o
}

// WithFilter добавляет значения фильтра, например ("title.contains", "road")
func (o *RequestOptions) WithFilter(key string, values ...string) *RequestOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}
	o.Filters[key] = append(o.Filters[key], values...)
	return o
}

// Values переводит параметры в query string. nil допустим.
func (o *RequestOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	for key, vs := range o.Filters {
		if key == "sort" {
			continue
		}
		for _, v := range vs {
			if v != "" {
				values.Add(key, v)
			}
		}
	}
	if o.Page != nil {
		values.Set("page", strconv.Itoa(*o.Page))
	}
	if o.Size != nil {
		values.Set("size", strconv.Itoa(*o.Size))
	}
	// sort передается отдельным параметром на каждый критерий
	for _, s := range o.Sort {
		values.Add("sort", s)
	}
	for _, s := range o.Filters["sort"] {
		values.Add("sort", s)
	}
	return values
}
