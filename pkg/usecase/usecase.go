package usecase

import (
	"math/rand/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/infra"
)

const defaultConcurrency = 8

type Shuffler = interfaces.Shuffler

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

type UseCase struct {
	clients     *infra.Clients
	cfg         model.Config
	shuffler    Shuffler
	concurrency int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithShuffler(s Shuffler) Option {
	return func(x *UseCase) {
		x.shuffler = s
	}
}

// WithConcurrency bounds the number of repositories whose alerts are fetched at once.
func WithConcurrency(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.concurrency = n
		}
	}
}

func New(clients *infra.Clients, cfg model.Config, options ...Option) *UseCase {
	x := &UseCase{
		clients:     clients,
		cfg:         cfg,
		shuffler:    globalShuffler{},
		concurrency: defaultConcurrency,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}
