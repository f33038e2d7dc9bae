package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mattn/smtexpr"
)

var (
	count    = flag.Int("n", 50, "number of expressions to generate")
	seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	simplify = flag.Bool("simplify", false, "use the (simplify (op left right)) form")
	exprs    = flag.String("exprs", "expressions.txt", "file to write generated expressions to")
	output   = flag.String("o", "z3_input.smt2", "SMT-LIB output file")
	style    = flag.String("style", "declare", "script style: declare or assert")
	interact = flag.Bool("repl", false, "read expressions interactively")
)

func grammar() smtexpr.Grammar {
	if *simplify {
		return smtexpr.GrammarSimplify
	}
	return smtexpr.GrammarPlain
}

func repl(logger *log.Logger) {
	proc := smtexpr.NewProcessor(grammar(), logger)
	scanner := bufio.NewScanner(os.Stdin)
	for index := 0; ; index++ {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := proc.ProcessLine(index, line)
		if err != nil {
			logger.Print(err)
			continue
		}
		fmt.Println(smtexpr.FormatAssert(res))
	}
}

func generate() (*os.File, error) {
	f, err := os.Create(*exprs)
	if err != nil {
		return nil, err
	}
	gen := smtexpr.NewGenerator(*seed, grammar())
	if err = gen.WriteTo(f, *count); err != nil {
		f.Close()
		return nil, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeScript(st smtexpr.Style, results []smtexpr.Result) error {
	emitter, err := smtexpr.NewEmitter()
	if err != nil {
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err = emitter.WriteScript(w, st, results); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(logger *log.Logger) error {
	st, err := smtexpr.ParseStyle(*style)
	if err != nil {
		return err
	}

	var f *os.File

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			if *interact {
				repl(logger)
				return nil
			}
			f, err = generate()
			if err != nil {
				return err
			}
			defer f.Close()
		} else {
			if *interact {
				logger.Print("-repl ignored: stdin is not a terminal")
			}
			f = os.Stdin
		}
	}

	if flag.NArg() == 1 {
		if *interact {
			logger.Print("-repl ignored: reading expressions from ", flag.Arg(0))
		}
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
	}

	proc := smtexpr.NewProcessor(grammar(), logger)
	results, failures, err := proc.Process(f)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Println(smtexpr.FormatAssert(res))
	}
	if len(failures) > 0 {
		logger.Printf("%d of %d expressions failed", len(failures), len(failures)+len(results))
	}

	return writeScript(st, results)
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "smtexpr: ", 0)
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}
