package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// maxLine is the longest input line accepted, in bytes.
const maxLine = 64 << 20

// calcFlags holds the command line flags.
type calcFlags struct {
	In       string
	Format   string
	Echo     bool
	Explain  bool
	Strict   bool
	MaxDepth int
	Jobs     int
}

func (flags *calcFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "in",
			Usage:       "input file with one expression per line, - for stdin (default stdin if no args given)",
			Destination: &flags.In,
		},
		&cli.StringFlag{
			Name:        "fmt",
			Value:       "%g",
			Usage:       "result formatting string",
			Destination: &flags.Format,
		},
		&cli.BoolFlag{
			Name:        "echo",
			Usage:       "print each expression before its result",
			Destination: &flags.Echo,
		},
		&cli.BoolFlag{
			Name:        "explain",
			Usage:       "print the reason next to each NaN caused by invalid input",
			Destination: &flags.Explain,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "exit with an error if any expression is invalid",
			Destination: &flags.Strict,
		},
		&cli.IntFlag{
			Name:        "max-depth",
			Value:       calc.DefaultMaxDepth,
			Usage:       "maximum nesting of parentheses and exponents, 0 for no limit",
			Destination: &flags.MaxDepth,
		},
		&cli.IntFlag{
			Name:        "j",
			Value:       runtime.GOMAXPROCS(0),
			Usage:       "number of expressions to evaluate in parallel",
			Destination: &flags.Jobs,
		},
	}
}

func main() {
	log.SetFlags(0)
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	var flags calcFlags
	return &cli.App{
		Name:      "calc",
		Usage:     "Evaluate arithmetic expressions.",
		ArgsUsage: "[--] [expression...]",
		Description: "Expressions beginning with - are invalid but would be read as flags;\n" +
			"put -- before the expressions to pass them through.",
		Flags:  flags.AsCliFlags(),
		Writer: stdout,
		Action: func(c *cli.Context) error {
			exprs, err := inputs(flags.In, c.Args().Slice(), stdin)
			if err != nil {
				return err
			}
			return run(&flags, exprs, c.App.Writer)
		},
	}
}

// inputs collects the expressions to evaluate. Lines of the input file come
// before expressions given as arguments.
func inputs(inname string, args []string, stdin io.Reader) ([]string, error) {
	var r io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	case inname == "-", len(args) == 0:
		r = stdin
	}
	var exprs []string
	if r != nil {
		scan := bufio.NewScanner(r)
		scan.Buffer(nil, maxLine)
		for scan.Scan() {
			line := scan.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			exprs = append(exprs, line)
		}
		if err := scan.Err(); err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
	}
	return append(exprs, args...), nil
}

type result struct {
	r   float64
	err error
}

// run evaluates exprs and writes one result per line to w, in input order.
func run(flags *calcFlags, exprs []string, w io.Writer) error {
	results := make([]result, len(exprs))
	var g errgroup.Group
	if flags.Jobs > 0 {
		g.SetLimit(flags.Jobs)
	}
	opt := calc.MaxDepth(flags.MaxDepth)
	for i, s := range exprs {
		g.Go(func() error {
			r, err := calc.Eval(s, opt)
			results[i] = result{r, err}
			return nil
		})
	}
	// Evaluation errors are kept in results, so Wait never fails.
	g.Wait()

	verb := flags.Format + "\n"
	failed := 0
	for i, res := range results {
		if flags.Echo {
			fmt.Fprintf(w, "%s = ", strings.TrimSpace(exprs[i]))
		}
		if res.err != nil {
			failed++
			if flags.Explain {
				fmt.Fprintf(w, "NaN (%v)\n", res.err)
				continue
			}
		}
		fmt.Fprintf(w, verb, res.r)
	}
	if flags.Strict && failed > 0 {
		return errors.Errorf("%d of %d expressions invalid", failed, len(exprs))
	}
	return nil
}
