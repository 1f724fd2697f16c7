package client

import (
	"fmt"
	"time"

	"github.com/shenikar/service_desk/internal/models"
)

// WireDateLayout - формат даты в теле запросов и ответов (ISO-8601, UTC)
const WireDateLayout = time.RFC3339Nano

// FormatWireDate возвращает строковое представление даты или nil для отсутствующей/нулевой даты
func FormatWireDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(WireDateLayout)
	return &s
}

// ParseWireDate разбирает дату из ответа сервера. Пустое значение дает nil.
func ParseWireDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(WireDateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("client: invalid date %q: %w", *s, err)
	}
	return &t, nil
}

// reportFields повторяет models.Report без собственных методов сериализации
type reportFields models.Report

// reportWire - обращение в том виде, в котором оно передается по сети.
// Поле Date перекрывает одноименное поле встроенной структуры.
type reportWire struct {
	reportFields
	Date *string `json:"date,omitempty"`
}

func reportToWire(report *models.Report) *reportWire {
	if report == nil {
		return nil
	}
	return &reportWire{
		reportFields: reportFields(*report),
		Date:         FormatWireDate(report.Date),
	}
}

func reportFromWire(w *reportWire) (*models.Report, error) {
	if w == nil {
		return nil, nil
	}
	report := models.Report(w.reportFields)
	date, err := ParseWireDate(w.Date)
	if err != nil {
		return nil, err
	}
	report.Date = date
	return &report, nil
}
