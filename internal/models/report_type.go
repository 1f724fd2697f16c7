package models

import (
	"encoding/json"
	"fmt"
)

// ReportType - тип обращения
type ReportType string

const (
	ReportTypeComplaint  ReportType = "COMPLAINT"
	ReportTypeSuggestion ReportType = "SUGGESTION"
	ReportTypeRequest    ReportType = "REQUEST"
	ReportTypeIncident   ReportType = "INCIDENT"
)

// ReportTypes возвращает все допустимые типы в порядке объявления
func ReportTypes() []ReportType {
	return []ReportType{ReportTypeComplaint, ReportTypeSuggestion, ReportTypeRequest, ReportTypeIncident}
}

// ParseReportType разбирает строковое значение типа обращения
func ParseReportType(s string) (ReportType, error) {
	for _, t := range ReportTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// UnmarshalJSON отклоняет неизвестные значения
func (t *ReportType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseReportType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
