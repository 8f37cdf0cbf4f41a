// catcalc evaluates one calculator operation from the command line.
//
//	catcalc add 20 30       # 50
//	catcalc divide 6 3      # 18: Divide forwards to Multiply
//	catcalc fifteen         # 15
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/toejough/catcalc"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// unexported variables.
var (
	errOperandCount = errors.New("wrong number of operands")
	errUnknownOp    = errors.New("unknown operation")
)

type cliArgs struct {
	Op      string   `arg:"positional,required" help:"add, subtract, multiply, divide or fifteen"`
	A       *float64 `arg:"positional"          help:"first operand"`
	B       *float64 `arg:"positional"          help:"second operand"`
	Verbose bool     `arg:"-v,--verbose"        help:"log dependency injection events to stderr"`
}

// run executes the CLI and returns the process exit code. opts are applied
// to the dependency graph after the defaults.
func run(args []string, stdout, stderr io.Writer, opts ...fx.Option) int {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "catcalc"}, &parsed)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}

	err = parser.Parse(args)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)

		return exitOK
	}

	if err != nil {
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitUsage
	}

	operation, err := lookup(parsed.Op)
	if err == nil {
		err = checkOperands(parsed.Op, operation, parsed.A, parsed.B)
	}

	if err != nil {
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitUsage
	}

	logger := newLogger(stderr, parsed.Verbose)
	defer func() { _ = logger.Sync() }()

	var calc *catcalc.Calculator

	app := newApp(logger, &calc, opts...)
	err = app.Err()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", errors.Wrap(err, "failed to build calculator"))

		return exitError
	}

	a, b := valueOf(parsed.A), valueOf(parsed.B)
	result := operation.eval(calc, a, b)
	logger.Debug("evaluated", zap.String("op", parsed.Op), zap.Float64("a", a),
		zap.Float64("b", b), zap.Float64("result", result))

	fmt.Fprintln(stdout, strconv.FormatFloat(result, 'g', -1, 64))

	return exitOK
}

type operation struct {
	eval     func(calc *catcalc.Calculator, a, b float64) float64
	operands int
}

func checkOperands(name string, op operation, a, b *float64) error {
	given := 0

	for _, operand := range []*float64{a, b} {
		if operand != nil {
			given++
		}
	}

	if given != op.operands {
		return errors.Wrapf(errOperandCount, "%s takes %d, got %d", name, op.operands, given)
	}

	return nil
}

func lookup(name string) (operation, error) {
	switch name {
	case "add":
		return operation{eval: (*catcalc.Calculator).Add, operands: 2}, nil
	case "subtract":
		return operation{eval: (*catcalc.Calculator).Subtract, operands: 2}, nil
	case "multiply":
		return operation{eval: (*catcalc.Calculator).Multiply, operands: 2}, nil
	case "divide":
		return operation{eval: (*catcalc.Calculator).Divide, operands: 2}, nil
	case "fifteen":
		return operation{eval: func(calc *catcalc.Calculator, _, _ float64) float64 {
			return calc.ConstantFifteen()
		}}, nil
	default:
		return operation{}, errors.Wrapf(errUnknownOp, "%q", name)
	}
}

func valueOf(operand *float64) float64 {
	if operand == nil {
		return 0
	}

	return *operand
}
