package main

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/spf13/cobra"
	"github.com/the127/attestate/internal/args"
	"github.com/the127/attestate/internal/commands"
	"github.com/the127/attestate/internal/config"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/middlewares"
	"github.com/the127/attestate/internal/queries"
)

var (
	configPath string
	production bool
	label      string

	rootCmd = &cobra.Command{
		Use:           "attestate",
		Short:         "Edit and check school attestate class rosters",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			args.Init(production, configPath)
			logging.Init()
			config.Init()
			initApp()
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check [file.csv]",
		Short: "Import a class file and report validation problems",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	convertCmd = &cobra.Command{
		Use:   "convert [in.csv] [out.csv]",
		Short: "Import a class file and write it back in the configured dialect",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}

	planCmd = &cobra.Command{
		Use:   "plan [file.csv]",
		Short: "Print the subjects plan of a class file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVar(&production, "production", false, "use production logging")

	convertCmd.Flags().StringVar(&label, "label", "", "class label to set before writing")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(planCmd)
}

func runCheck(cmd *cobra.Command, cmdArgs []string) error {
	return run(cmd.Context(), "check", func(ctx context.Context) error {
		classId, err := importAndSave(ctx, cmdArgs[0], "")
		if err != nil {
			return err
		}

		mediator := ioc.GetDependency[mediatr.Mediator](middlewares.GetScope(ctx))
		report, err := mediatr.Send[*queries.ValidateClassResponse](ctx, mediator, queries.ValidateClass{
			ClassId: classId,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if report.Valid {
			fmt.Fprintln(out, "ok")
			return nil
		}

		for _, p := range report.Problems {
			fmt.Fprintln(out, p)
		}
		return fmt.Errorf("%d problems found", len(report.Problems))
	})
}

func runConvert(cmd *cobra.Command, cmdArgs []string) error {
	return run(cmd.Context(), "convert", func(ctx context.Context) error {
		classId, err := importAndSave(ctx, cmdArgs[0], label)
		if err != nil {
			return err
		}

		delimiter, dateFormat := csvParams()
		mediator := ioc.GetDependency[mediatr.Mediator](middlewares.GetScope(ctx))
		_, err = mediatr.Send[*commands.ExportClassResponse](ctx, mediator, commands.ExportClass{
			ClassId:    classId,
			Path:       cmdArgs[1],
			Delimiter:  delimiter,
			DateFormat: dateFormat,
		})
		return err
	})
}

func runPlan(cmd *cobra.Command, cmdArgs []string) error {
	return run(cmd.Context(), "plan", func(ctx context.Context) error {
		classId, err := importAndSave(ctx, cmdArgs[0], "")
		if err != nil {
			return err
		}

		mediator := ioc.GetDependency[mediatr.Mediator](middlewares.GetScope(ctx))
		plan, err := mediatr.Send[*queries.GetSubjectsPlanResponse](ctx, mediator, queries.GetSubjectsPlan{
			ClassId: classId,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, s := range plan.Subjects {
			fmt.Fprintf(out, "%d. %s\n", i+1, s.Name)
		}
		return nil
	})
}
