package smtexpr

import (
	"io/ioutil"
	"path"
	"text/template"

	"github.com/rakyll/statik/fs"

	// registers the script templates under lib/
	_ "github.com/mattn/smtexpr/statik"
)

//go:generate statik -src=lib

func loadTemplates() (*template.Template, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	tmpl := template.New("smt2")
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		b, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		if _, err = tmpl.New(fi.Name()).Parse(string(b)); err != nil {
			return nil, err
		}
	}
	return tmpl, nil
}
