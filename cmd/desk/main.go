// Command desk - консольный клиент сервиса обращений.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shenikar/service_desk/internal/client"
	"github.com/shenikar/service_desk/internal/config"
	"github.com/shenikar/service_desk/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app - зависимости, общие для всех команд
type app struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
	verbose  bool

	logger       *logrus.Logger
	categories   *client.CategoryService
	institutions *client.InstitutionService
	reports      *client.ReportService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "desk",
		Short: "Service desk command line client",
		Long: `Manage citizen reports, categories and institutions of a service desk server.

Connection settings are read from SERVICE_DESK_ENDPOINT, SERVICE_DESK_API_KEY
and SERVICE_DESK_TIMEOUT (or a .env file) and can be overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.endpoint, "endpoint", "", "API base URL (default from SERVICE_DESK_ENDPOINT)")
	rootCmd.PersistentFlags().StringVar(&a.apiKey, "api-key", "", "API key (default from SERVICE_DESK_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "HTTP timeout (default from SERVICE_DESK_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newInstitutionsCmd(a))
	rootCmd.AddCommand(newReportsCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = a.apiKey
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}

	a.logger = logger.NewConsole(cfg.LogLevel)
	c := client.NewClient(cfg, a.logger)
	a.categories = client.NewCategoryService(c)
	a.institutions = client.NewInstitutionService(c)
	a.reports = client.NewReportService(c)
	return nil
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTotal[T any](cmd *cobra.Command, resp *client.Response[T]) {
	if total, ok := resp.TotalCount(); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "total: %d\n", total)
	}
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// pageFlags - флаги постраничного вывода списков
type pageFlags struct {
	page int
	size int
	sort []string
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.page, "page", 0, "Page number, zero based")
	cmd.Flags().IntVar(&p.size, "size", 20, "Page size")
	cmd.Flags().StringSliceVar(&p.sort, "sort", nil, "Sort criteria, e.g. name,asc")
}

func (p *pageFlags) options() *client.RequestOptions {
	return client.Paged(p.page, p.size).WithSort(p.sort...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
