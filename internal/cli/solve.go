// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/config"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/iterate"
)

// GridValue is one tabulated point of a value function.
type GridValue struct {
	Wage  float64 `json:"wage"`
	Value float64 `json:"value"`
}

// SolveResult is the output of the solve command.
type SolveResult struct {
	RunID    string      `json:"run_id"`
	Operator string      `json:"operator"`
	State    string      `json:"state"`
	Sweeps   int         `json:"sweeps"`
	Error    float64     `json:"error"`
	Tol      float64     `json:"tol"`
	Values   []GridValue `json:"values"`
}

type solveOptions struct {
	tol     float64
	maxIter int
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Iterate the Bellman operator to a fixed point",
		Long: `Iterate the configured Bellman operator from w0(x) = 1/x until the
sup-norm distance between successive iterates drops below the tolerance,
then print the final value function.

Exits with status 1 if the iteration budget runs out first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if cmd.Flags().Changed("tol") {
				s.exp.Solver.Tol = opts.tol
			}
			if cmd.Flags().Changed("max-iter") {
				s.exp.Solver.MaxIter = opts.maxIter
			}
			return runSolve(cmd.Context(), s)
		},
	}

	cmd.Flags().Float64Var(&opts.tol, "tol", iterate.DefaultTol, "convergence tolerance (overrides solver.tol)")
	cmd.Flags().IntVar(&opts.maxIter, "max-iter", iterate.DefaultMaxIter, "sweep budget (overrides solver.max_iter)")

	return cmd
}

func runSolve(ctx context.Context, s *session) error {
	_, out, err := solveExperiment(ctx, s)
	if err != nil {
		return err
	}

	res := SolveResult{
		RunID:    s.runID,
		Operator: s.exp.Solver.Operator,
		State:    out.State().String(),
		Sweeps:   out.Sweeps(),
		Error:    out.Distance(),
		Tol:      s.exp.Solver.Tol,
		Values:   tabulate(out.Final()),
	}
	if err := s.out.emit(res, func(w io.Writer) {
		fmt.Fprintf(w, "run_id\t%s\n", res.RunID)
		fmt.Fprintf(w, "operator\t%s\n", res.Operator)
		fmt.Fprintf(w, "state\t%s\n", res.State)
		fmt.Fprintf(w, "sweeps\t%d\n", res.Sweeps)
		fmt.Fprintf(w, "error\t%.6g\n", res.Error)
		fmt.Fprintf(w, "tol\t%g\n\n", res.Tol)
		fmt.Fprintln(w, "wage\tvalue")
		for _, v := range res.Values {
			fmt.Fprintf(w, "%.6f\t%.8f\n", v.Wage, v.Value)
		}
	}); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}

	return exitFor(out)
}

// solveExperiment builds the configured operator and runs the driver to a
// terminal state.
func solveExperiment(ctx context.Context, s *session) (config.Operator, iterate.Outcome, error) {
	op, err := s.exp.BuildOperator(s.logger)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "building operator", err)
	}
	w0, err := s.exp.InitialGuess()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "initial guess", err)
	}

	s.logger.Info("solving",
		zap.String("operator", s.exp.Solver.Operator),
		zap.Int("grid_points", op.Grid().Len()),
		zap.Int("shocks", len(op.Shocks())),
		zap.Float64("tol", s.exp.Solver.Tol),
		zap.Int("max_iter", s.exp.Solver.MaxIter))

	out, err := iterate.Solve(ctx, op, w0, s.exp.DriverOptions(s.logger))
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "iteration failed", err)
	}
	return op, out, nil
}

// exitFor maps an outcome to the command's return error.
func exitFor(out iterate.Outcome) error {
	if ex, ok := out.(iterate.ExhaustedOutcome); ok {
		return WrapExitError(ExitNonConvergence, "not converged", ex.Err())
	}
	return nil
}

func tabulate(v *interp.ValueFunction) []GridValue {
	g := v.Grid()
	out := make([]GridValue, g.Len())
	for i := range out {
		out[i] = GridValue{Wage: g.At(i), Value: v.At(i)}
	}
	return out
}
