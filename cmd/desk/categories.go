package main

import (
	"github.com/shenikar/service_desk/internal/models"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage report categories",
	}

	var page pageFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.categories.Query(a.ctx(cmd), page.options())
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
		Short: "Show a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			resp, err := a.categories.Find(a.ctx(cmd), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}

	var name string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.categories.Create(a.ctx(cmd), &models.Category{Name: name})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Category name")
	_ = createCmd.MarkFlagRequired("name")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			resp, err := a.categories.Update(a.ctx(cmd), &models.Category{ID: &id, Name: name})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}
	updateCmd.Flags().StringVar(&name, "name", "", "Category name")
	_ = updateCmd.MarkFlagRequired("name")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			_, err = a.categories.Delete(a.ctx(cmd), id)
			return err
		},
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}
