package main

import (
	"context"

	"limitdocs"
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input limitdocs.Input) (*limitdocs.Result, error)
}

// Compile-time interface implementation check.
var _ Generator = (*limitdocs.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() (Generator, error)
	Release(Generator)
	Size() int
}

// servicePool adapts limitdocs.ServicePool to the Pool interface.
type servicePool struct {
	pool *limitdocs.ServicePool
}

func (p *servicePool) Acquire() (Generator, error) {
	return p.pool.Acquire()
}

func (p *servicePool) Release(g Generator) {
	if svc, ok := g.(*limitdocs.Service); ok {
		p.pool.Release(svc)
	}
}

func (p *servicePool) Size() int {
	return p.pool.Size()
}

// Compile-time check that servicePool implements Pool.
var _ Pool = (*servicePool)(nil)
