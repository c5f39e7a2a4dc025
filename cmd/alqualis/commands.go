package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"alqualis/config"
	"alqualis/database"
	healthCtrlImp "alqualis/pkg/health/controllerImp"
	importerCtrlImp "alqualis/pkg/importer/controllerImp"
	importerSvc "alqualis/pkg/importer/service"
	appMiddleware "alqualis/pkg/middleware"
	plantationCtrlImp "alqualis/pkg/plantation/controllerImp"
	producerCtrlImp "alqualis/pkg/producer/controllerImp"
	refCtrlImp "alqualis/pkg/reference/controllerImp"
	"alqualis/pkg/report"
	reportCtrlImp "alqualis/pkg/report/controllerImp"
	"alqualis/pkg/sheet"
	"alqualis/router"
)

func newRootCommand(cfg config.AppConfig) *cobra.Command {
	root := &cobra.Command{
		Use:           "alqualis",
		Short:         "Farm registry: producers, plantations and reference data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path of the store file")

	root.AddCommand(
		newServeCommand(&cfg),
		newInitCommand(&cfg),
		newDestroyCommand(&cfg),
		newImportCommand(&cfg),
		newExportCommand(&cfg),
	)
	return root
}

func newServeCommand(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, *cfg, cfg.SeedOnInit)
			if err != nil {
				return err
			}
			defer a.Close()

			e := echo.New()
			e.HideBanner = true
			e.Use(echoMiddleware.Recover())
			e.Use(appMiddleware.RequestLog())

			router.New(
				e,
				refCtrlImp.New(a.refs),
				producerCtrlImp.New(a.producers),
				plantationCtrlImp.New(a.plantations),
				reportCtrlImp.New(a.reports, a.refs, cfg.ExportSheet),
				importerCtrlImp.New(a.importer, cfg.CodePrefix),
				healthCtrlImp.NewHealthCtrl(a.store.DB),
				a.metrics.Handler(),
			)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("[http] listening on :%s", cfg.Port)
				errCh <- e.Start(":" + cfg.Port)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			log.Printf("[http] shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return e.Shutdown(sctx)
		},
	}
}

func newInitCommand(cfg *config.AppConfig) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the store and its tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := database.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()
			return st.InitializeSchema(cmd.Context(), seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", cfg.SeedOnInit, "Insert the default exposure faces on a new store")
	return cmd
}

func newDestroyCommand(cfg *config.AppConfig) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the whole store file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete %s without --yes", cfg.DBPath)
			}
			return database.Destroy(cfg.DBPath)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func newImportCommand(cfg *config.AppConfig) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import producers and plantations from an .xlsx, .csv or .html file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sheet.ReadFile(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *cfg, cfg.SeedOnInit)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.ErrOrStderr()
			rep, err := a.importer.Import(cmd.Context(), d, importerSvc.Options{
				Prefix: prefix,
				Progress: func(done, total int) {
					_, _ = fmt.Fprintf(out, "\r%d/%d", done, total)
				},
			})
			_, _ = fmt.Fprintln(out)
			if err != nil {
				return err
			}
			if rep.Partial() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "import completed with partial failures: %d of %d rows imported\n", rep.Succeeded, rep.Total)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "import completed: %d rows imported\n", rep.Succeeded)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", cfg.CodePrefix, "Prefix of the generated producer codes")
	return cmd
}

func newExportCommand(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write every plantation with its producer to a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.reports.UnifiedExport(cmd.Context())
			if err != nil {
				return err
			}
			t := report.ExportTable(rows)

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := sheet.WriteXLSX(f, cfg.ExportSheet, t.Header, t.Rows); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(t.Rows), args[0])
			return nil
		},
	}
}
