package main

import (
	"errors"
	"fmt"

	"github.com/shenikar/service_desk/internal/editor"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/spf13/cobra"
)

func newReportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage citizen reports",
	}

	var page pageFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.reports.Query(a.ctx(cmd), page.options())
			if err != nil {
				return err
			}
			printTotal(cmd, resp)
			return printJSON(cmd, resp.Body)
		},
	}
	page.register(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			resp, err := a.reports.Find(a.ctx(cmd), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			_, err = a.reports.Delete(a.ctx(cmd), id)
			return err
		},
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List report types",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range models.ReportTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, deleteCmd, typesCmd, newReportSaveCmd(a))
	return cmd
}

// saveFlags - поля обращения, которые можно задать из командной строки
type saveFlags struct {
	id          int64
	title       string
	content     string
	date        string
	location    string
	reportType  string
	category    int64
	institution int64
	image       string
}

// newReportSaveCmd создает или редактирует обращение через тот же редактор, что и страница обращения:
// форма заполняется из существующего обращения, поверх применяются флаги, затем выполняются проверка и сохранение.
func newReportSaveCmd(a *app) *cobra.Command {
	var f saveFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a report or update an existing one",
		Long: `Create a report, or update the report given by --id.

When updating, fields that are not passed keep their current values.
New reports get the start of the current day as their date unless --date is set.
Title, content, date, location and an image are required.
A report always keeps an image: --image replaces it, there is no way to remove it.`,
		Example: `  desk reports save --title "Broken lamp" --content "Lamp on Main St." \
    --location "Main St. 5" --type INCIDENT --category 2 --image ./lamp.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.saveReport(cmd, f)
		},
	}

	cmd.Flags().Int64Var(&f.id, "id", 0, "Id of the report to update")
	cmd.Flags().StringVar(&f.title, "title", "", "Title")
	cmd.Flags().StringVar(&f.content, "content", "", "Content")
	cmd.Flags().StringVar(&f.date, "date", "", "Date in local time, format "+editor.DateTimeFormat)
	cmd.Flags().StringVar(&f.location, "location", "", "Location")
	cmd.Flags().StringVar(&f.reportType, "type", "", "Report type, see 'desk reports types'")
	cmd.Flags().Int64Var(&f.category, "category", 0, "Category id")
	cmd.Flags().Int64Var(&f.institution, "institution", 0, "Institution id")
	cmd.Flags().StringVar(&f.image, "image", "", "Path to an image to attach")

	return cmd
}

// backNavigator отмечает успешное завершение сохранения
type backNavigator struct {
	done bool
}

func (n *backNavigator) Back() {
	n.done = true
}

func (a *app) saveReport(cmd *cobra.Command, f saveFlags) error {
	ctx := a.ctx(cmd)
	events := editor.NewEventManager()
	nav := &backNavigator{}
	ed := editor.NewEditor(a.reports, a.categories, a.institutions, events, nav, a.logger)

	var alerts []editor.AlertError
	unsubscribe := events.Subscribe(editor.ErrorEvent, func(ev editor.Event) {
		if alert, ok := ev.Content.(editor.AlertError); ok {
			alerts = append(alerts, alert)
		}
	})
	defer unsubscribe()

	var existing *models.Report
	if cmd.Flags().Changed("id") {
		resp, err := a.reports.Find(ctx, f.id)
		if err != nil {
			return fmt.Errorf("could not load report %d: %w", f.id, err)
		}
		existing = resp.Body
	}

	st := editor.NewState()
	if err := ed.Open(ctx, st, existing); err != nil {
		return err
	}

	if err := a.applySaveFlags(cmd, st, f); err != nil {
		return err
	}
	if cmd.Flags().Changed("image") {
		if err := ed.SetFileFromPath(st, f.image, true); err != nil {
			return err
		}
		a.logger.WithField("size", ed.ByteSize(st)).Info("Image attached")
	}

	sub, err := ed.Save(ctx, st)
	if err != nil {
		return err
	}
	sub.Wait()

	if !nav.done {
		if len(alerts) > 0 {
			return errors.New(alerts[len(alerts)-1].Message)
		}
		return errors.New("report was not saved")
	}
	return printJSON(cmd, ed.CreateFromForm(st))
}

// applySaveFlags переносит в форму только явно переданные флаги.
// Категория и учреждение ищутся в загруженных списках, а если их там нет, запрашиваются по id.
func (a *app) applySaveFlags(cmd *cobra.Command, st *editor.State, f saveFlags) error {
	ctx := a.ctx(cmd)
	changed := cmd.Flags().Changed

	var reportType *models.ReportType
	if changed("type") {
		t, err := models.ParseReportType(f.reportType)
		if err != nil {
			return err
		}
		reportType = &t
	}

	var category *models.Category
	if changed("category") {
		category = findByID(st.Categories(), f.category, editor.TrackCategoryByID)
		if category == nil {
			resp, err := a.categories.Find(ctx, f.category)
			if err != nil {
				return fmt.Errorf("category %d: %w", f.category, err)
			}
			category = resp.Body
		}
	}

	var institution *models.Institution
	if changed("institution") {
		institution = findByID(st.Institutions(), f.institution, editor.TrackInstitutionByID)
		if institution == nil {
			resp, err := a.institutions.Find(ctx, f.institution)
			if err != nil {
				return fmt.Errorf("institution %d: %w", f.institution, err)
			}
			institution = resp.Body
		}
	}

	st.PatchForm(func(form *editor.ReportForm) {
		if changed("title") {
			form.Title = f.title
		}
		if changed("content") {
			form.Content = f.content
		}
		if changed("date") {
			form.Date = f.date
		}
		if changed("location") {
			form.Location = f.location
		}
		if reportType != nil {
			form.Type = reportType
		}
		if category != nil {
			form.Category = category
		}
		if institution != nil {
			form.Institution = institution
		}
	})
	return nil
}

func findByID[T any](items []T, id int64, track func(T) int64) T {
	var zero T
	for _, item := range items {
		if track(item) == id {
			return item
		}
	}
	return zero
}
