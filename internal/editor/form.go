package editor

import (
	"sync"

	"github.com/shenikar/service_desk/internal/models"
)

// DateTimeFormat - формат даты в поле формы
const DateTimeFormat = "2006-01-02T15:04"

// ReportForm - значения полей формы обращения
type ReportForm struct {
	ID                *int64
	Title             string `validate:"required"`
	Content           string `validate:"required"`
	Date              string `validate:"required"`
	Images            []byte `validate:"required"`
	ImagesContentType string
	Location          string `validate:"required"`
	Type              *models.ReportType
	Category          *models.Category
	Institution       *models.Institution
}

// State - состояние страницы редактирования: форма, списки для выбора и флаг сохранения.
// Обработчики асинхронных вызовов меняют его из других горутин, поэтому доступ идет через методы.
type State struct {
	mu           sync.Mutex
	form         ReportForm
	categories   []*models.Category
	institutions []*models.Institution
	isSaving     bool
}

func NewState() *State {
	return &State{
		categories:   []*models.Category{},
		institutions: []*models.Institution{},
	}
}

func (s *State) Form() ReportForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// PatchForm изменяет поля формы под блокировкой
func (s *State) PatchForm(patch func(form *ReportForm)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch(&s.form)
}

func (s *State) Categories() []*models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories
}

func (s *State) Institutions() []*models.Institution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.institutions
}

func (s *State) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSaving
}

func (s *State) setSaving(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSaving = v
}
