package main

import (
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/polarity/storage/sqlite/zombiezen"
)

// Pool opens each SQLite database once per run.
type Pool struct {
	pools map[string]*sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if pool, ok := p.pools[path]; ok {
		return pool, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	if p.pools == nil {
		p.pools = map[string]*sqlitex.Pool{}
	}
	p.pools[path] = pool
	return pool, nil
}

func (p *Pool) Close() error {
	var first error
	for path, pool := range p.pools {
		if err := pool.Close(); err != nil && first == nil {
			first = err
		}
		delete(p.pools, path)
	}

	return first
}
