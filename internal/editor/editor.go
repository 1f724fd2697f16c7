// Package editor управляет формой создания и редактирования обращения.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/service_desk/internal/client"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReportSaver определяет контракт сохранения обращений
type ReportSaver interface {
	Create(ctx context.Context, report *models.Report) (*client.Response[*models.Report], error)
	Update(ctx context.Context, report *models.Report) (*client.Response[*models.Report], error)
}

// CategoryLookup - источник списка категорий для выбора
type CategoryLookup interface {
	Query(ctx context.Context, opts *client.RequestOptions) (*client.Response[[]*models.Category], error)
	AddCategoryToCollectionIfMissing(categories []*models.Category, toCheck ...*models.Category) []*models.Category
}

// InstitutionLookup - источник списка учреждений для выбора
type InstitutionLookup interface {
	Query(ctx context.Context, opts *client.RequestOptions) (*client.Response[[]*models.Institution], error)
	AddInstitutionToCollectionIfMissing(institutions []*models.Institution, toCheck ...*models.Institution) []*models.Institution
}

// Navigator возвращает пользователя на предыдущую страницу после сохранения
type Navigator interface {
	Back()
}

// Editor - контроллер страницы обращения
type Editor struct {
	reports      ReportSaver
	categories   CategoryLookup
	institutions InstitutionLookup
	events       *EventManager
	navigator    Navigator
	data         DataUtils
	validate     *validator.Validate
	logger       *logrus.Logger
	location     *time.Location
	now          func() time.Time
}

func NewEditor(
	reports ReportSaver,
	categories CategoryLookup,
	institutions InstitutionLookup,
	events *EventManager,
	navigator Navigator,
	logger *logrus.Logger,
) *Editor {
	return &Editor{
		reports:      reports,
		categories:   categories,
		institutions: institutions,
		events:       events,
		navigator:    navigator,
		validate:     validator.New(),
		logger:       logger,
		location:     time.Local,
		now:          time.Now,
	}
}

// Open заполняет форму из report и загружает списки для выбора.
// Новому обращению проставляется начало текущего дня.
func (e *Editor) Open(ctx context.Context, st *State, report *models.Report) error {
	if report == nil {
		report = &models.Report{}
	}
	if report.ID == nil {
		now := e.now().In(e.location)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.location)
		copied := *report
		copied.Date = &today
		report = &copied
	}

	e.UpdateForm(st, report)
	return e.LoadRelationshipsOptions(ctx, st)
}

// UpdateForm переносит обращение в форму и добавляет его категорию и учреждение в списки для выбора
func (e *Editor) UpdateForm(st *State, report *models.Report) {
	st.mu.Lock()
	defer st.mu.Unlock()

	date := ""
	if report.Date != nil && !report.Date.IsZero() {
		date = report.Date.In(e.location).Format(DateTimeFormat)
	}
	st.form = ReportForm{
		ID:                report.ID,
		Title:             report.Title,
		Content:           report.Content,
		Date:              date,
		Images:            report.Images,
		ImagesContentType: report.ImagesContentType,
		Location:          report.Location,
		Type:              report.Type,
		Category:          report.Category,
		Institution:       report.Institution,
	}

	st.categories = e.categories.AddCategoryToCollectionIfMissing(st.categories, report.Category)
	st.institutions = e.institutions.AddInstitutionToCollectionIfMissing(st.institutions, report.Institution)
}

// LoadRelationshipsOptions параллельно загружает категории и учреждения.
// Запросы независимы: ошибка одного не прерывает другой, каждый заполняет свой список.
// Текущий выбор формы добавляется в начало списка, если его нет среди загруженных.
func (e *Editor) LoadRelationshipsOptions(ctx context.Context, st *State) error {
	log := e.logger.WithFields(logrus.Fields{
		"component": "editor",
		"method":    "LoadRelationshipsOptions",
	})

	var g errgroup.Group
	var categoryErr, institutionErr error
	g.Go(func() error {
		resp, err := e.categories.Query(ctx, nil)
		if err != nil {
			categoryErr = fmt.Errorf("editor: could not load categories: %w", err)
			return nil
		}
		st.mu.Lock()
		st.categories = e.categories.AddCategoryToCollectionIfMissing(resp.Body, st.form.Category)
		st.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		resp, err := e.institutions.Query(ctx, nil)
		if err != nil {
			institutionErr = fmt.Errorf("editor: could not load institutions: %w", err)
			return nil
		}
		st.mu.Lock()
		st.institutions = e.institutions.AddInstitutionToCollectionIfMissing(resp.Body, st.form.Institution)
		st.mu.Unlock()
		return nil
	})
	_ = g.Wait()

	if err := errors.Join(categoryErr, institutionErr); err != nil {
		log.WithError(err).Warn("Failed to load relationship options")
		return err
	}
	return nil
}

// CreateFromForm собирает обращение из значений формы.
// Некорректная дата в форме дает обращение без даты.
func (e *Editor) CreateFromForm(st *State) *models.Report {
	form := st.Form()

	report := &models.Report{
		ID:                form.ID,
		Title:             form.Title,
		Content:           form.Content,
		Images:            form.Images,
		ImagesContentType: form.ImagesContentType,
		Location:          form.Location,
		Type:              form.Type,
		Category:          form.Category,
		Institution:       form.Institution,
	}
	if form.Date != "" {
		if date, err := time.ParseInLocation(DateTimeFormat, form.Date, e.location); err == nil {
			report.Date = &date
		}
	}
	return report
}

// Validate проверяет обязательные поля формы
func (e *Editor) Validate(st *State) error {
	form := st.Form()
	if err := e.validate.Struct(form); err != nil {
		return fmt.Errorf("editor: invalid form: %w", err)
	}
	return nil
}

// Save создает или обновляет обращение в зависимости от наличия идентификатора.
// Результат приходит асинхронно: при успехе форма заменяется ответом сервера и вызывается Navigator.Back,
// при ошибке рассылается ErrorEvent. Флаг IsSaving сбрасывается в любом случае.
func (e *Editor) Save(ctx context.Context, st *State) (*client.Subscription, error) {
	if err := e.Validate(st); err != nil {
		return nil, err
	}

	st.setSaving(true)
	report := e.CreateFromForm(st)

	log := e.logger.WithFields(logrus.Fields{
		"component": "editor",
		"method":    "Save",
	})

	save := e.reports.Create
	if report.ID != nil {
		save = e.reports.Update
		log = log.WithField("report_id", *report.ID)
	}
	log.Info("Saving report")

	return client.Subscribe(ctx, func(ctx context.Context) (*client.Response[*models.Report], error) {
		return save(ctx, report)
	}, client.Observer[*client.Response[*models.Report]]{
		Next: func(resp *client.Response[*models.Report]) {
			log.Info("Report saved successfully")
			if resp.Body != nil {
				e.UpdateForm(st, resp.Body)
			}
			if e.navigator != nil {
				e.navigator.Back()
			}
		},
		Error: func(err error) {
			log.WithError(err).Error("Failed to save report")
			e.events.BroadcastError(AlertError{Message: err.Error(), Key: "error.http"})
		},
		Finally: func() {
			st.setSaving(false)
		},
	}), nil
}

// SetFileData загружает вложение в форму. Ошибка загрузки рассылается как ErrorEvent.
func (e *Editor) SetFileData(st *State, r io.Reader, isImage bool) error {
	form := st.Form()
	if err := e.data.LoadFileToForm(&form, r, isImage); err != nil {
		e.events.BroadcastError(fileLoadAlert(err))
		return err
	}
	st.PatchForm(func(f *ReportForm) {
		f.Images = form.Images
		f.ImagesContentType = form.ImagesContentType
	})
	return nil
}

// SetFileFromPath - SetFileData для файла на диске
func (e *Editor) SetFileFromPath(st *State, path string, isImage bool) error {
	form := st.Form()
	if err := e.data.LoadFileFromPath(&form, path, isImage); err != nil {
		e.events.BroadcastError(fileLoadAlert(err))
		return err
	}
	st.PatchForm(func(f *ReportForm) {
		f.Images = form.Images
		f.ImagesContentType = form.ImagesContentType
	})
	return nil
}

// ClearInputImage очищает вложение формы
func (e *Editor) ClearInputImage(st *State) {
	st.PatchForm(func(f *ReportForm) {
		f.Images = nil
		f.ImagesContentType = ""
	})
}

// ByteSize возвращает размер вложения формы в читаемом виде
func (e *Editor) ByteSize(st *State) string {
	return formatAsBytes(int64(len(st.Form().Images)))
}

// TrackCategoryByID - ключ категории в списке выбора
func TrackCategoryByID(item *models.Category) int64 {
	if id := models.CategoryIdentifier(item); id != nil {
		return *id
	}
	return 0
}

// TrackInstitutionByID - ключ учреждения в списке выбора
func TrackInstitutionByID(item *models.Institution) int64 {
	if id := models.InstitutionIdentifier(item); id != nil {
		return *id
	}
	return 0
}

func fileLoadAlert(err error) AlertError {
	if fe, ok := err.(*FileLoadError); ok {
		return AlertError{Message: fe.Message, Key: fe.Key, Params: fe.Params}
	}
	return AlertError{Message: err.Error()}
}
