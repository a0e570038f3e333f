// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/bellman"
)

// ShockWage is one point of the unrestricted reset schedule.
type ShockWage struct {
	Shock float64 `json:"shock"`
	Wage  float64 `json:"wage"`
}

// ScheduleResult is the output of the schedule command.
type ScheduleResult struct {
	RunID        string                `json:"run_id"`
	Operator     string                `json:"operator"`
	State        string                `json:"state"`
	Sweeps       int                   `json:"sweeps"`
	Unrestricted []ShockWage           `json:"unrestricted"`
	Restricted   []bellman.ScheduleRow `json:"restricted"`
}

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the policy schedules at the solved value function",
		Long: `Solve as the solve command does, apply the operator once more to the
final iterate, and print the two policy schedules:

  unrestricted  the flexible reset wage for each shock
  restricted    the constrained continuation wage for each (wage, shock)

Exits with status 1 (after printing) if the iteration did not converge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			op, out, err := solveExperiment(cmd.Context(), s)
			if err != nil {
				return err
			}
			sw, err := op.Apply(cmd.Context(), out.Final())
			if err != nil {
				return WrapExitError(ExitCommandError, "policy sweep failed", err)
			}

			res := ScheduleResult{
				RunID:        s.runID,
				Operator:     s.exp.Solver.Operator,
				State:        out.State().String(),
				Sweeps:       out.Sweeps(),
				Unrestricted: unrestricted(s, sw),
				Restricted:   sw.RestrictedSchedule(),
			}
			if err := s.out.emit(res, func(w io.Writer) {
				fmt.Fprintf(w, "state\t%s\n", res.State)
				fmt.Fprintf(w, "sweeps\t%d\n\n", res.Sweeps)
				fmt.Fprintln(w, "shock\treset_wage")
				for _, p := range res.Unrestricted {
					fmt.Fprintf(w, "%.6f\t%.6f\n", p.Shock, p.Wage)
				}
				fmt.Fprintln(w)
				fmt.Fprintln(w, "wage\tshock\tcontinuation_wage")
				for _, r := range res.Restricted {
					fmt.Fprintf(w, "%.6f\t%.6f\t%.6f\n", r.Wage, r.Shock, r.Continuation)
				}
			}); err != nil {
				return WrapExitError(ExitCommandError, "writing output", err)
			}

			return exitFor(out)
		},
	}
}

// unrestricted tabulates the reset schedule. When the shocks cannot form a
// grid (a single mean-shock column, or repeated draws) the raw column is
// reported instead.
func unrestricted(s *session, sw *bellman.Sweep) []ShockWage {
	out := make([]ShockWage, 0, len(sw.Shocks))
	sched, err := sw.UnrestrictedSchedule()
	if err != nil {
		s.logger.Warn("reset schedule is not a function of the shock", zap.Error(err))
		for j, z := range sw.Shocks {
			out = append(out, ShockWage{Shock: z, Wage: sw.At(0, j).Unconstrained.Wage})
		}
		return out
	}

	g := sched.Grid()
	for j := 0; j < g.Len(); j++ {
		out = append(out, ShockWage{Shock: g.At(j), Wage: sched.At(j)})
	}
	return out
}
