// # internal/diag/diag.go
package diag

import (
	"fmt"

	"codeatlas/internal/grammar"
	"codeatlas/internal/heuristic"
)

// Capability reports which extraction features a language profile produced
// when run against its built-in sample.
type Capability struct {
	Language   string `json:"language"`
	Functions  bool   `json:"functions"`
	Types      bool   `json:"types"`
	Imports    bool   `json:"imports"`
	Docstrings bool   `json:"docstrings"`
}

// Summary is an ad hoc parse summary for one file.
type Summary struct {
	Language     string `json:"language"`
	Declarations int    `json:"declarations"`
	MaxDepth     int    `json:"max_depth"`
	Imports      int    `json:"imports"`
}

// Check parses the built-in sample for a language and reports the
// capability flags it exercised.
func Check(language string) (Capability, error) {
	p, ok := grammar.Lookup(language)
	if !ok {
		return Capability{}, fmt.Errorf("unknown language %q", language)
	}
	sample, ok := samples[language]
	if !ok {
		return Capability{}, fmt.Errorf("no built-in sample for %q", language)
	}

	res := heuristic.Parse(sample, "sample."+language, p)
	if res.Err != nil {
		return Capability{}, fmt.Errorf("parse %s sample: %w", language, res.Err)
	}

	c := Capability{Language: language, Imports: len(res.Imports) > 0}
	var walk func([]*heuristic.Declaration)
	walk = func(decls []*heuristic.Declaration) {
		for _, d := range decls {
			switch d.Kind {
			case heuristic.KindFunction, heuristic.KindMethod:
				c.Functions = true
			case heuristic.KindClass, heuristic.KindStruct, heuristic.KindInterface,
				heuristic.KindEnum, heuristic.KindTrait, heuristic.KindType,
				heuristic.KindModule, heuristic.KindNamespace:
				c.Types = true
			}
			if d.HasDoc() {
				c.Docstrings = true
			}
			walk(d.Children)
		}
	}
	walk(res.Declarations)
	return c, nil
}

// CheckAll runs Check for every registered language, sorted by name.
func CheckAll() ([]Capability, error) {
	caps := make([]Capability, 0, len(grammar.Names()))
	for _, name := range grammar.Names() {
		c, err := Check(name)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// Summarize parses content as the language detected from path.
func Summarize(path, content string) (Summary, error) {
	p, ok := grammar.DetectPath(path)
	if !ok {
		return Summary{}, fmt.Errorf("no language registered for %q", path)
	}
	res := heuristic.Parse(content, path, p)
	if res.Err != nil {
		return Summary{}, res.Err
	}
	return Summary{
		Language:     p.Name,
		Declarations: res.CountDeclarations(),
		MaxDepth:     res.MaxDepth(),
		Imports:      len(res.Imports),
	}, nil
}
