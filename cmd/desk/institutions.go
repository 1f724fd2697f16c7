package main

import (
	"github.com/shenikar/service_desk/internal/models"
	"github.com/spf13/cobra"
)

func newInstitutionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "institutions",
		Aliases: []string{"institution"},
		Short:   "Manage institutions reports are addressed to",
	}

	var page pageFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List institutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.institutions.Query(a.ctx(cmd), page.options())
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
		Short: "Show an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			resp, err := a.institutions.Find(a.ctx(cmd), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}

	var fields models.Institution
	bind := func(c *cobra.Command) {
		c.Flags().StringVar(&fields.InstanceName, "name", "", "Institution name")
		c.Flags().StringVar(&fields.Address, "address", "", "Postal address")
		c.Flags().StringVar(&fields.ContactNumber, "phone", "", "Contact phone number")
		_ = c.MarkFlagRequired("name")
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an institution",
		RunE: func(cmd *cobra.Command, args []string) error {
			institution := fields
			resp, err := a.institutions.Create(a.ctx(cmd), &institution)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}
	bind(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			institution := fields
			institution.ID = &id
			resp, err := a.institutions.Update(a.ctx(cmd), &institution)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.Body)
		},
	}
	bind(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			_, err = a.institutions.Delete(a.ctx(cmd), id)
			return err
		},
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}
