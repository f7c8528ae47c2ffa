package main

import (
	"fmt"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/ops"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export a built-in dataset",
	Long: `Export a built-in dataset as a YAML dataset file.

Edit the file and pass it back with --dataset to try the solvers and
layouts on your own graph. Without --problem, the dataset your
registration number selects is exported.

Examples:
  fg dump --problem level
  fg dump --problem mutual -o mygraph.yaml
  fg solve --dataset mygraph.yaml`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var (
	dumpProblem string
	dumpOutput  string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpProblem, "problem", "", "dataset to export: mutual or level")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write to this file instead of stdout")
	dumpCmd.RegisterFlagCompletionFunc("problem", completeProblems)
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	p := model.ProblemType(dumpProblem)
	if dumpProblem == "" {
		p = model.SelectProblem(e.cfg.RegNo)
	}
	if !p.Valid() {
		return &cli.ValidationError{Field: "problem", Message: fmt.Sprintf("%q is not mutual or level", dumpProblem)}
	}

	if dumpOutput == "" {
		data, err := model.MarshalDataset(model.BuiltinDataset(p))
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := ops.DumpBuiltin(e.store, dumpOutput, p); err != nil {
		return err
	}
	fmt.Printf("Wrote %s dataset to %s.\n", p, e.store.DatasetPath(dumpOutput))
	return nil
}
