package client

import (
	"context"

	"github.com/shenikar/service_desk/internal/collection"
	"github.com/shenikar/service_desk/internal/models"
)

// ReportService - операции над ресурсом /reports.
// Дата переводится в строку перед отправкой и разбирается обратно в каждом ответе.
type ReportService struct {
	resource resource[*reportWire]
}

func NewReportService(c *Client) *ReportService {
	return &ReportService{resource: resource[*reportWire]{client: c, path: "/reports"}}
}

func (s *ReportService) Create(ctx context.Context, report *models.Report) (*Response[*models.Report], error) {
	if report == nil {
		return nil, ErrNilEntity
	}
	resp, err := s.resource.create(ctx, reportToWire(report))
	if err != nil {
		return nil, err
	}
	return convertDateFromServer(resp)
}

func (s *ReportService) Update(ctx context.Context, report *models.Report) (*Response[*models.Report], error) {
	resp, err := s.resource.update(ctx, models.ReportIdentifier(report), reportToWire(report))
	if err != nil {
		return nil, err
	}
	return convertDateFromServer(resp)
}

func (s *ReportService) Find(ctx context.Context, id int64) (*Response[*models.Report], error) {
	resp, err := s.resource.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertDateFromServer(resp)
}

func (s *ReportService) Query(ctx context.Context, opts *RequestOptions) (*Response[[]*models.Report], error) {
	resp, err := s.resource.query(ctx, opts)
	if err != nil {
		return nil, err
	}
	return convertDateArrayFromServer(resp)
}

func (s *ReportService) Delete(ctx context.Context, id int64) (*Response[struct{}], error) {
	return s.resource.delete(ctx, id)
}

func (s *ReportService) AddReportToCollectionIfMissing(reports []*models.Report, toCheck ...*models.Report) []*models.Report {
	return collection.AddIfMissing(reports, models.ReportIdentifier, toCheck...)
}

func convertDateFromServer(resp *Response[*reportWire]) (*Response[*models.Report], error) {
	report, err := reportFromWire(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response[*models.Report]{StatusCode: resp.StatusCode, Header: resp.Header, Body: report}, nil
}

func convertDateArrayFromServer(resp *Response[[]*reportWire]) (*Response[[]*models.Report], error) {
	reports := make([]*models.Report, 0, len(resp.Body))
	for _, w := range resp.Body {
		report, err := reportFromWire(w)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return &Response[[]*models.Report]{StatusCode: resp.StatusCode, Header: resp.Header, Body: reports}, nil
}
