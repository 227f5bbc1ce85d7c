package sphere

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Builder builds meshes and remembers the most recent ones. Generation is
// deterministic, so a cached mesh is exactly the mesh Build would return.
// Cached meshes are shared and must not be modified.
type Builder struct {
	opts   []Option
	logger *zap.Logger
	cache  *lru.Cache[Config, *Mesh]
}

func NewBuilder(size int, opts ...Option) (*Builder, error) {
	cache, err := lru.New[Config, *Mesh](size)
	if err != nil {
		return nil, errors.Wrap(err, "create mesh cache")
	}

	return &Builder{
		opts:   opts,
		logger: newOptions(opts).logger,
		cache:  cache,
	}, nil
}

func (b *Builder) Build(cfg Config) (*Mesh, error) {
	if mesh, ok := b.cache.Get(cfg); ok {
		b.logger.Debug("mesh cache hit", zap.Int("points", cfg.N))
		return mesh, nil
	}

	mesh, err := Build(cfg, b.opts...)
	if err != nil {
		return nil, err
	}

	b.cache.Add(cfg, mesh)

	b.logger.Debug("mesh built",
		zap.Int("points", cfg.N),
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Int("degenerate", mesh.Degenerate))

	return mesh, nil
}

func (b *Builder) Len() int {
	return b.cache.Len()
}
