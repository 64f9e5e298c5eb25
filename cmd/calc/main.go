package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/calc"
)

var log = commonlog.GetLogger("calc")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

type options struct {
	in      string
	echo    bool
	trace   bool
	workers int
	noColor bool
	verbose int
	logFile string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate infix arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions made of numbers, + - * / ^,
unary + and -, and parentheses, printing one result per expression.

Each argument is one expression. With --in, or with no arguments, expressions
are read one per line; blank lines are skipped. Use -- before an expression
that starts with -.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if opts.logFile != "" {
				path = &opts.logFile
			}
			commonlog.Configure(opts.verbose, path)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", "input file, one expression per line (- for stdin; default stdin if no args given)")
	f.BoolVar(&opts.echo, "echo", false, "print each expression before its result")
	f.BoolVarP(&opts.trace, "trace", "t", false, "print the evaluation steps of each expression")
	f.IntVarP(&opts.workers, "workers", "j", 0, "number of expressions to evaluate at once (default GOMAXPROCS)")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to a file instead of stderr")

	return cmd
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, args []string, opts *options) error {
	srcs, err := inputs(stdin, args, opts.in)
	if err != nil {
		return err
	}
	log.Debugf("evaluating %d expressions", len(srcs))
	results, err := calc.CalculateAll(ctx, srcs, calc.Workers(opts.workers))
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	p := newPrinter(stdout, opts)
	failed := 0
	for i, r := range results {
		if !r.OK {
			failed++
			log.Infof("expression %d: %s: %v", i+1, r.Kind, r.Err)
		}
		if err := p.print(i+1, srcs[i], r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if failed > 0 {
		log.Noticef("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

// inputs collects expressions from the input file or stdin, followed by
// args.
func inputs(stdin io.Reader, args []string, in string) ([]string, error) {
	var text []byte
	var err error
	switch {
	case in != "" && in != "-":
		text, err = os.ReadFile(in)
	case in == "-", len(args) == 0:
		text, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return append(calc.SplitLines(string(text)), args...), nil
}

type printer struct {
	w     io.Writer
	echo  bool
	trace bool

	ok   *color.Color
	bad  *color.Color
	step *color.Color
}

func newPrinter(w io.Writer, opts *options) *printer {
	p := printer{
		w:     w,
		echo:  opts.echo,
		trace: opts.trace,
		ok:    color.New(color.FgGreen),
		bad:   color.New(color.FgRed),
		step:  color.New(color.Faint),
	}
	if opts.noColor {
		p.ok.DisableColor()
		p.bad.DisableColor()
		p.step.DisableColor()
	}
	return &p
}

// print writes the result of the nth expression.
func (p *printer) print(n int, src string, r calc.Result) error {
	var b strings.Builder
	if p.trace {
		fmt.Fprintf(&b, "expression %d:\n", n)
		for _, line := range r.Trace {
			b.WriteString("  ")
			b.WriteString(p.step.Sprint(line))
			b.WriteByte('\n')
		}
	}
	if p.echo {
		b.WriteString(src)
		b.WriteString(" : ")
	}
	if r.OK {
		b.WriteString(p.ok.Sprint(FormatValue(r.Value)))
	} else {
		b.WriteString(p.bad.Sprintf("%s: %v", r.Kind, r.Err))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}
