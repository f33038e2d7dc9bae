package smtexpr

import (
	"bufio"
	"io"
	"io/ioutil"
	"log"
	"strings"
)

// Result is one evaluated line. Index is the zero-based line number in the
// input.
type Result struct {
	Index  int
	Source string
	Node   Node
	Value  int64
}

type Failure struct {
	Index  int
	Source string
	Err    error
}

type Processor struct {
	Parser *Parser
	Logger *log.Logger
}

func NewProcessor(g Grammar, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Processor{
		Parser: NewParser(g),
		Logger: logger,
	}
}

func (p *Processor) ProcessLine(index int, line string) (Result, error) {
	tokens := Tokenize(line, func(e *UnexpectedCharError) {
		p.Logger.Printf("line %d: %v", index+1, e)
	})
	node, err := p.Parser.Parse(tokens)
	if err != nil {
		return Result{}, err
	}
	value, err := Evaluate(node)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Index:  index,
		Source: line,
		Node:   node,
		Value:  value,
	}, nil
}

// Process evaluates every non-blank line of r, whatever its length. A
// failing line is logged and recorded, and processing goes on with the next
// one. The error is only ever a read error from r.
func (p *Processor) Process(r io.Reader) ([]Result, []Failure, error) {
	results := []Result{}
	failures := []Failure{}

	br := bufio.NewReader(r)
	for index := 0; ; index++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return results, failures, err
		}
		if line == "" && err == io.EOF {
			break
		}
		eof := err == io.EOF
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			res, err := p.ProcessLine(index, line)
			if err != nil {
				p.Logger.Printf("line %d: %q: %v", index+1, line, err)
				failures = append(failures, Failure{Index: index, Source: line, Err: err})
			} else {
				results = append(results, res)
			}
		}
		if eof {
			break
		}
	}
	return results, failures, nil
}
