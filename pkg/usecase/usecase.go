package usecase

import (
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
)

type UseCases struct {
	newIndexClient interfaces.IndexClientFactory
	responder      interfaces.Responder
}

var _ interfaces.ResourceUsecases = &UseCases{}

type Option func(*UseCases)

func WithIndexClientFactory(f interfaces.IndexClientFactory) Option {
	return func(u *UseCases) {
		u.newIndexClient = f
	}
}

func WithResponder(responder interfaces.Responder) Option {
	return func(u *UseCases) {
		u.responder = responder
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
