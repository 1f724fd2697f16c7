package v1

import (
	"time"

	"github.com/shenikar/service_desk/internal/models"
)

func DTOToCategoryModel(dto CategoryRequest) *models.Category {
	return &models.Category{ID: dto.ID, Name: dto.Name}
}

func ModelToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{ID: idValue(category.ID), Name: category.Name}
}

func ModelsToCategoryResponses(categories []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ModelToCategoryResponse(category)
	}
	return responses
}

func DTOToInstitutionModel(dto InstitutionRequest) *models.Institution {
	return &models.Institution{
		ID:            dto.ID,
		InstanceName:  dto.InstanceName,
		Address:       dto.Address,
		ContactNumber: dto.ContactNumber,
	}
}

func ModelToInstitutionResponse(institution *models.Institution) *InstitutionResponse {
	if institution == nil {
		return nil
	}
	return &InstitutionResponse{
		ID:            idValue(institution.ID),
		InstanceName:  institution.InstanceName,
		Address:       institution.Address,
		ContactNumber: institution.ContactNumber,
	}
}

func ModelsToInstitutionResponses(institutions []*models.Institution) []*InstitutionResponse {
	responses := make([]*InstitutionResponse, len(institutions))
	for i, institution := range institutions {
		responses[i] = ModelToInstitutionResponse(institution)
	}
	return responses
}

// DTOToReportModel преобразует DTO в модель. Связи заполняются только идентификатором,
// полные значения подставляет сервис.
func DTOToReportModel(dto ReportRequest) *models.Report {
	report := &models.Report{
		ID:                dto.ID,
		Title:             dto.Title,
		Content:           dto.Content,
		Date:              dto.Date,
		Images:            dto.Images,
		ImagesContentType: dto.ImagesContentType,
		Location:          dto.Location,
		Type:              dto.Type,
	}
	if dto.Category != nil {
		report.Category = &models.Category{ID: dto.Category.ID}
	}
	if dto.Institution != nil {
		report.Institution = &models.Institution{ID: dto.Institution.ID}
	}
	return report
}

func ModelToReportResponse(report *models.Report) *ReportResponse {
	if report == nil {
		return nil
	}
	var date *time.Time
	if report.Date != nil && !report.Date.IsZero() {
		utc := report.Date.UTC()
		date = &utc
	}
	return &ReportResponse{
		ID:                idValue(report.ID),
		Title:             report.Title,
		Content:           report.Content,
		Date:              date,
		Images:            report.Images,
		ImagesContentType: report.ImagesContentType,
		Location:          report.Location,
		Type:              report.Type,
		Category:          ModelToCategoryResponse(report.Category),
		Institution:       ModelToInstitutionResponse(report.Institution),
	}
}

func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
