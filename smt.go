package smtexpr

import (
	"fmt"
	"io"
	"text/template"
)

type Style int

const (
	// StyleAssert asserts each result against its expression.
	StyleAssert Style = iota
	// StyleDeclare binds each expression to a fresh Int constant x<i>.
	StyleDeclare
)

func ParseStyle(s string) (Style, error) {
	switch s {
	case "assert":
		return StyleAssert, nil
	case "declare":
		return StyleDeclare, nil
	}
	return 0, fmt.Errorf("invalid style: %q", s)
}

func (s Style) templateName() string {
	if s == StyleDeclare {
		return "declare.smt2"
	}
	return "assert.smt2"
}

type Emitter struct {
	tmpl *template.Template
}

func NewEmitter() (*Emitter, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	for _, s := range []Style{StyleAssert, StyleDeclare} {
		if tmpl.Lookup(s.templateName()) == nil {
			return nil, fmt.Errorf("missing template: %s", s.templateName())
		}
	}
	return &Emitter{tmpl: tmpl}, nil
}

// WriteScript writes an SMT-LIB script for results, ending with
// (check-sat) and (get-model).
func (e *Emitter) WriteScript(w io.Writer, style Style, results []Result) error {
	return e.tmpl.ExecuteTemplate(w, style.templateName(), results)
}

func FormatAssert(r Result) string {
	return fmt.Sprintf("(assert (= %d %v))", r.Value, r.Node)
}
