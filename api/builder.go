package api

import (
	"github.com/sarchlab/matchgen/config"
	"github.com/sarchlab/matchgen/emit"
	"github.com/sarchlab/matchgen/isa"
)

// GeneratorBuilder creates a new instance of Generator.
type GeneratorBuilder struct {
	dialect string
	host    *config.Host
	isa     *isa.ISA
}

// MakeBuilder returns a builder for the default go dialect.
func MakeBuilder() GeneratorBuilder {
	return GeneratorBuilder{dialect: "go"}
}

// WithDialect sets the output language.
func (b GeneratorBuilder) WithDialect(dialect string) GeneratorBuilder {
	b.dialect = dialect
	return b
}

// WithHost replaces the default host of the dialect.
func (b GeneratorBuilder) WithHost(host config.Host) GeneratorBuilder {
	b.host = &host
	return b
}

// WithISA sets the alias table. The default is isa.DefaultISA.
func (b GeneratorBuilder) WithISA(set *isa.ISA) GeneratorBuilder {
	b.isa = set
	return b
}

// Build creates a generator. The name only shows up in logs.
func (b GeneratorBuilder) Build(name string) (Generator, error) {
	dialect := b.dialect
	if dialect == "" {
		dialect = "go"
	}

	host := config.Default(dialect)
	if b.host != nil {
		host = *b.host
	}
	if err := host.Validate(); err != nil {
		return nil, err
	}

	d, err := emit.LookupDialect(dialect, host)
	if err != nil {
		return nil, err
	}

	return &generatorImpl{
		name:    name,
		emitter: emit.NewEmitter(d, b.isa),
	}, nil
}
