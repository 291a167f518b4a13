// SPDX-License-Identifier: MIT

// Package cli implements the matcalc command tree: one cobra command per
// matrix operation, configured through viper and logging through zap.
package cli

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrix/ops"
)

// app carries the state shared by every subcommand of one root command.
type app struct {
	v    *viper.Viper
	cfg  *Config
	log  *zap.Logger
	opts []matrix.Option
}

// NewRootCommand returns the matcalc root command with all operations attached.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Dense matrix calculator",
		Long: `matcalc evaluates one matrix operation per invocation.
Matrices are literals with rows separated by ';' and values by spaces,
for example "1 2;3 4".

Operands that start with '-' would be read as flags. Put them after the
"--" terminator, which ends flag parsing:

  matcalc pow -- "2 0;0 2" -1
  matcalc det --concurrent -- "-1 2;3 4"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetFlagErrorFunc(flagError)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("row-sep", string(matrix.DefaultRowSeparator), "row separator in matrix literals")
	flags.String("col-sep", string(matrix.DefaultColumnSeparator), "column separator in matrix literals")
	flags.Int("decimals", DefaultDecimals, "round results to this many decimals (-1 disables)")
	flags.StringP("output", "o", DefaultFormat, "output format: text, json or yaml")
	flags.String("log-level", DefaultLogLevel, "logging level: debug, info, warn or error")
	a.bind(keyRowSeparator, flags.Lookup("row-sep"))
	a.bind(keyColumnSeparator, flags.Lookup("col-sep"))
	a.bind(keyDecimals, flags.Lookup("decimals"))
	a.bind(keyFormat, flags.Lookup("output"))
	a.bind(keyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.detCmd(),
		a.unaryCmd("rref <A>", "Reduced row-echelon form of A", func(m *matrix.Dense) (*Result, error) {
			r, err := matrix.RREF(m)
			if err != nil {
				return nil, err
			}

			return matrixResult("rref", []string{"rref"}, r), nil
		}),
		a.binaryCmd("solve <A> <B>", "Solve A·X = B for X", func(x, y *matrix.Dense) (*Result, error) {
			s, err := matrix.Solve(x, y)
			if err != nil {
				return nil, err
			}

			return matrixResult("solve", []string{"x"}, s), nil
		}),
		a.binaryCmd("mul <A> <B>", "Matrix product A×B", binaryMatrix("mul", matrix.Mul[float64])),
		a.binaryCmd("add <A> <B>", "Element-wise sum A+B", binaryMatrix("add", matrix.Add[float64])),
		a.binaryCmd("sub <A> <B>", "Element-wise difference A−B", binaryMatrix("sub", matrix.Sub[float64])),
		a.scalarArgCmd("scale <A> <k>", "Multiply every element of A by k", func(m *matrix.Dense, arg string) (*Result, error) {
			k, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "scale factor %q", arg)
			}
			s, err := matrix.Scale(m, k)
			if err != nil {
				return nil, err
			}

			return matrixResult("scale", []string{"scaled"}, s), nil
		}),
		a.scalarArgCmd("pow <A> <k>", "Raise square A to the non-negative integer power k", func(m *matrix.Dense, arg string) (*Result, error) {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "exponent %q", arg)
			}
			p, err := matrix.Pow(m, k)
			if err != nil {
				return nil, err
			}

			return matrixResult("pow", []string{"power"}, p), nil
		}),
		a.unaryCmd("transpose <A>", "Transpose of A", func(m *matrix.Dense) (*Result, error) {
			return matrixResult("transpose", []string{"transpose"}, m.Transpose()), nil
		}),
		a.unaryCmd("inv <A>", "Inverse of square A", func(m *matrix.Dense) (*Result, error) {
			inv, err := ops.Inverse(m)
			if err != nil {
				return nil, err
			}

			return matrixResult("inv", []string{"inverse"}, inv), nil
		}),
		a.unaryCmd("rank <A>", "Rank of A", func(m *matrix.Dense) (*Result, error) {
			r, err := ops.Rank(m)
			if err != nil {
				return nil, err
			}

			return scalarResult("rank", float64(r)), nil
		}),
		a.unaryCmd("trace <A>", "Trace of square A", func(m *matrix.Dense) (*Result, error) {
			tr, err := ops.Trace(m)
			if err != nil {
				return nil, err
			}

			return scalarResult("trace", tr), nil
		}),
		a.unaryCmd("lu <A>", "Doolittle LU decomposition of square A", func(m *matrix.Dense) (*Result, error) {
			l, u, err := ops.LU(m)
			if err != nil {
				return nil, err
			}

			return matrixResult("lu", []string{"L", "U"}, l, u), nil
		}),
		a.unaryCmd("cov <A>", "Sample covariance of the columns of A", func(m *matrix.Dense) (*Result, error) {
			c, _, err := ops.Covariance(m)
			if err != nil {
				return nil, err
			}

			return matrixResult("cov", []string{"covariance"}, c), nil
		}),
	)

	return root
}

// bind ties a flag to a config key. Lookup cannot miss for flags defined
// alongside, so the error is impossible.
func (a *app) bind(key string, f *pflag.Flag) {
	_ = a.v.BindPFlag(key, f)
}

// setup resolves configuration, the logger and the parse options before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return errors.Wrap(err, "reading --config")
	}
	if a.cfg, err = loadConfig(a.v, path); err != nil {
		return err
	}
	if a.log, err = newLogger(a.cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if a.opts, err = a.cfg.ParseOptions(); err != nil {
		return err
	}
	a.log.Debug("configuration resolved",
		zap.String("format", a.cfg.Format),
		zap.Int("decimals", a.cfg.Decimals),
		zap.String("row_separator", a.cfg.RowSeparator),
		zap.String("column_separator", a.cfg.ColumnSeparator),
	)

	return nil
}

// parse reads the operand at position pos (1-based) of the command line.
func (a *app) parse(pos int, literal string) (*matrix.Dense, error) {
	m, err := matrix.Parse(literal, a.opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "operand %d", pos)
	}
	r, c := m.Shape()
	a.log.Debug("parsed operand", zap.Int("pos", pos), zap.Int("rows", r), zap.Int("cols", c))

	return m, nil
}

// emit rounds, renders and logs one result.
func (a *app) emit(cmd *cobra.Command, res *Result) error {
	if err := res.finish(a.cfg.Decimals); err != nil {
		return errors.Wrap(err, "formatting result")
	}

	return render(cmd.OutOrStdout(), a.cfg.Format, res)
}

// fail logs a failed operation and returns err wrapped with the op name.
func (a *app) fail(op string, err error) error {
	a.log.Warn("operation failed", zap.String("op", op), zap.Error(err))

	return errors.Wrap(err, op)
}

func (a *app) unaryCmd(use, short string, fn func(*matrix.Dense) (*Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parse(1, args[0])
			if err != nil {
				return a.fail(cmd.Name(), err)
			}
			res, err := fn(m)
			if err != nil {
				return a.fail(cmd.Name(), err)
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) binaryCmd(use, short string, fn func(x, y *matrix.Dense) (*Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(1, args[0])
			if err != nil {
				return a.fail(cmd.Name(), err)
			}
			y, err := a.parse(2, args[1])
			if err != nil {
				return a.fail(cmd.Name(), err)
			}
			res, err := fn(x, y)
			if err != nil {
				return a.fail(cmd.Name(), err)
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) scalarArgCmd(use, short string, fn func(*matrix.Dense, string) (*Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parse(1, args[0])
			if err != nil {
				return a.fail(cmd.Name(), err)
			}
			res, err := fn(m, args[1])
			if err != nil {
				return a.fail(cmd.Name(), err)
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det <A>",
		Short: "Determinant of square A by cofactor expansion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parse(1, args[0])
			if err != nil {
				return a.fail("det", err)
			}
			var d float64
			if a.cfg.Concurrent {
				d, err = matrix.DeterminantConcurrent(cmdContext(cmd), m)
			} else {
				d, err = matrix.Determinant(m)
			}
			if err != nil {
				return a.fail("det", err)
			}

			return a.emit(cmd, scalarResult("det", d))
		},
	}
	cmd.Flags().Bool("concurrent", false, "expand the first row concurrently")
	a.bind(keyConcurrent, cmd.Flags().Lookup("concurrent"))

	return cmd
}

func binaryMatrix(op string, fn func(x, y *matrix.Dense) (*matrix.Dense, error)) func(x, y *matrix.Dense) (*Result, error) {
	return func(x, y *matrix.Dense) (*Result, error) {
		m, err := fn(x, y)
		if err != nil {
			return nil, err
		}

		return matrixResult(op, []string{op}, m), nil
	}
}

// flagError points at the "--" terminator, since a negative operand is the
// usual cause of an unknown shorthand flag.
func flagError(cmd *cobra.Command, err error) error {
	return errors.Wrapf(err, "%s (operands starting with '-' go after \"--\")", cmd.CommandPath())
}

// cmdContext returns the command's context, or Background when cobra has none.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
