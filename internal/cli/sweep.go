// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wagerig/bellman"
)

// SweepRow is one (wage, shock) entry of a single operator application.
type SweepRow struct {
	Wage            float64 `json:"wage"`
	Shock           float64 `json:"shock"`
	Value           float64 `json:"value"`
	UnconstrainedAt float64 `json:"unconstrained_wage"`
	ConstrainedAt   float64 `json:"constrained_wage"`
}

// SweepResult is the output of the sweep command.
type SweepResult struct {
	RunID    string     `json:"run_id"`
	Operator string     `json:"operator"`
	Rows     []SweepRow `json:"rows"`
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Apply the Bellman operator once to w0(x) = 1/x",
		Long: `Apply the configured Bellman operator once to the initial guess
w0(x) = 1/x and print the full (wage, shock) table of combined values and
regime optima.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			op, err := s.exp.BuildOperator(s.logger)
			if err != nil {
				return WrapExitError(ExitCommandError, "building operator", err)
			}
			w0, err := s.exp.InitialGuess()
			if err != nil {
				return WrapExitError(ExitCommandError, "initial guess", err)
			}
			sw, err := op.Apply(cmd.Context(), w0)
			if err != nil {
				return WrapExitError(ExitCommandError, "sweep failed", err)
			}

			res := SweepResult{RunID: s.runID, Operator: s.exp.Solver.Operator, Rows: sweepRows(sw)}
			return s.out.emit(res, func(w io.Writer) {
				fmt.Fprintln(w, "wage\tshock\tvalue\tunconstrained_wage\tconstrained_wage")
				for _, r := range res.Rows {
					fmt.Fprintf(w, "%.6f\t%.6f\t%.8f\t%.6f\t%.6f\n",
						r.Wage, r.Shock, r.Value, r.UnconstrainedAt, r.ConstrainedAt)
				}
			})
		},
	}
}

func sweepRows(sw *bellman.Sweep) []SweepRow {
	rows := make([]SweepRow, len(sw.Points))
	for k, p := range sw.Points {
		rows[k] = SweepRow{
			Wage:            p.Wage,
			Shock:           p.Shock,
			Value:           p.Value,
			UnconstrainedAt: p.Unconstrained.Wage,
			ConstrainedAt:   p.Constrained.Wage,
		}
	}
	return rows
}
