package main

import (
	"fmt"
	"os"
	"path/filepath"

	"moto_portal/internal/repositories"
	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/spf13/cobra"
)

func newTransferService() services.SpecTransferService {
	return services.NewSpecTransferService(
		repositories.NewSpecRepository(),
		repositories.NewModelRepository(),
		repositories.NewImportLogRepository(),
	)
}

func newSpecsCmd(open dbOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specs",
		Short: "Import or export model specs as xlsx workbooks",
	}
	cmd.AddCommand(newSpecsImportCmd(open))
	cmd.AddCommand(newSpecsExportCmd(open))
	return cmd
}

type specsImportOptions struct {
	modelID uint
	file    string
	replace bool
}

func newSpecsImportCmd(open dbOpener) *cobra.Command {
	var opts specsImportOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import specs of a model from an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}

			f, err := os.Open(opts.file)
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := newTransferService().Import(cmd.Context(), db, opts.modelID, f, dto.ImportOptions{
				Filename:        filepath.Base(opts.file),
				ReplaceExisting: opts.replace,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported: %d, updated: %d, skipped: %d\n", res.Imported, res.Updated, res.Skipped)
			return nil
		},
	}

	cmd.Flags().UintVar(&opts.modelID, "model", 0, "Model ID (required)")
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to .xlsx file (required)")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "Delete existing specs before import")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newSpecsExportCmd(open dbOpener) *cobra.Command {
	var (
		modelID uint
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export specs of a model to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}

			data, filename, err := newTransferService().Export(cmd.Context(), db, modelID)
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "written %s\n", out)
			return nil
		},
	}

	cmd.Flags().UintVar(&modelID, "model", 0, "Model ID (required)")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default: model_<id>_specs.xlsx)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}
