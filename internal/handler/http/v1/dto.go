package v1

import (
	"time"

	"github.com/shenikar/service_desk/internal/models"
)

// CategoryRequest DTO для создания и обновления категории
// @Description DTO для создания и обновления категории
type CategoryRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name" validate:"required,max=255"`
}

// CategoryResponse DTO для ответа с категорией
// @Description DTO для ответа с категорией
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InstitutionRequest DTO для создания и обновления учреждения
// @Description DTO для создания и обновления учреждения
type InstitutionRequest struct {
	ID            *int64 `json:"id,omitempty"`
	InstanceName  string `json:"instanceName" validate:"required,max=255"`
	Address       string `json:"address,omitempty" validate:"max=500"`
	ContactNumber string `json:"contactNumber,omitempty" validate:"max=50"`
}

// InstitutionResponse DTO для ответа с учреждением
// @Description DTO для ответа с учреждением
type InstitutionResponse struct {
	ID            int64  `json:"id"`
	InstanceName  string `json:"instanceName"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// Reference - ссылка на категорию или учреждение. Остальные поля объекта игнорируются.
type Reference struct {
	ID *int64 `json:"id" validate:"required"`
}

// ReportRequest DTO для создания и обновления обращения
// @Description DTO для создания и обновления обращения
type ReportRequest struct {
	ID                *int64             `json:"id,omitempty"`
	Title             string             `json:"title" validate:"required,max=255"`
	Content           string             `json:"content,omitempty"`
	Date              *time.Time         `json:"date,omitempty"`
	Images            []byte             `json:"images,omitempty" swaggertype:"string" format:"base64"`
	ImagesContentType string             `json:"imagesContentType,omitempty" validate:"required_with=Images"`
	Location          string             `json:"location,omitempty"`
	Type              *models.ReportType `json:"type,omitempty" swaggertype:"string" enums:"COMPLAINT,SUGGESTION,REQUEST,INCIDENT"`
	Category          *Reference         `json:"category,omitempty"`
	Institution       *Reference         `json:"institution,omitempty"`
}

// ReportResponse DTO для ответа с обращением
// @Description DTO для ответа с обращением
type ReportResponse struct {
	ID                int64                `json:"id"`
	Title             string               `json:"title"`
	Content           string               `json:"content,omitempty"`
	Date              *time.Time           `json:"date,omitempty"`
	Images            []byte               `json:"images,omitempty" swaggertype:"string" format:"base64"`
	ImagesContentType string               `json:"imagesContentType,omitempty"`
	Location          string               `json:"location,omitempty"`
	Type              *models.ReportType   `json:"type,omitempty" swaggertype:"string"`
	Category          *CategoryResponse    `json:"category,omitempty"`
	Institution       *InstitutionResponse `json:"institution,omitempty"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
