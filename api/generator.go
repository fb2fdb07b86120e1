// Package api is the entry point for programs that embed the generator.
package api

import (
	"io"

	"github.com/sarchlab/matchgen/emit"
	"github.com/sarchlab/matchgen/pattern"
)

// Generator turns pattern text into matcher source.
type Generator interface {
	// Dialect names the output language.
	Dialect() string

	// Generate filters and parses raw pattern lines and writes the matcher
	// to w. Nothing is written when the pattern is rejected.
	Generate(lines []string, w io.Writer) error

	// GenerateFrom reads the pattern lines from r.
	GenerateFrom(r io.Reader, w io.Writer) error
}

type generatorImpl struct {
	name    string
	emitter *emit.Emitter
}

func (g *generatorImpl) Dialect() string {
	return g.emitter.Dialect().Name()
}

func (g *generatorImpl) Generate(lines []string, w io.Writer) error {
	p, err := pattern.Parse(pattern.Filter(lines))
	if err != nil {
		return err
	}

	return g.emit(p, w)
}

func (g *generatorImpl) GenerateFrom(r io.Reader, w io.Writer) error {
	p, err := pattern.Read(r)
	if err != nil {
		return err
	}

	return g.emit(p, w)
}

func (g *generatorImpl) emit(p pattern.Pattern, w io.Writer) error {
	emit.Trace("generate",
		"generator", g.name,
		"dialect", g.Dialect(),
		"entries", p.Len())

	return g.emitter.Emit(p, w)
}
