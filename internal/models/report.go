package models

import (
	"time"
)

// Report - обращение пользователя.
// Category и Institution хранятся полной копией, а не только идентификатором.
type Report struct {
	ID                *int64       `json:"id,omitempty"`
	Title             string       `json:"title,omitempty"`
	Content           string       `json:"content,omitempty"`
	Date              *time.Time   `json:"date,omitempty"`
	Images            []byte       `json:"images,omitempty"`
	ImagesContentType string       `json:"imagesContentType,omitempty"`
	Location          string       `json:"location,omitempty"`
	Type              *ReportType  `json:"type,omitempty"`
	Category          *Category    `json:"category,omitempty"`
	Institution       *Institution `json:"institution,omitempty"`
}

// ReportIdentifier возвращает идентификатор обращения или nil
func ReportIdentifier(report *Report) *int64 {
	if report == nil {
		return nil
	}
	return report.ID
}
