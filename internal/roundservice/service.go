// Package roundservice manages business logic layer of rounded transactions.
package roundservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/go-petr/pet-rounds/internal/domain"
)

// Repo provides the provider access interface needed by round service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package roundservice
type Repo interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (string, error)
	Transactions(ctx context.Context, token string, creds domain.Credentials, filters domain.TransactionFilters) (domain.ResourceSet, error)
}

// Service facilitates round service layer logic.
type Service struct {
	repo  Repo
	users []domain.Credentials
}

// New returns round service struct. users are the accounts merged by
// AggregatedRoundedTransactions, in that order.
func New(r Repo, users []domain.Credentials) *Service {
	return &Service{
		repo:  r,
		users: users,
	}
}

// RoundedTransactions authenticates the user and returns its rounded debit transactions.
func (s *Service) RoundedTransactions(ctx context.Context, creds domain.Credentials, filters domain.TransactionFilters) (domain.ResourceSet, error) {
	token, err := s.repo.Authenticate(ctx, creds)
	if err != nil {
		return domain.ResourceSet{}, err
	}

	rs, err := s.repo.Transactions(ctx, token, creds, filters)
	if err != nil {
		return domain.ResourceSet{}, err
	}

	rs.Resources = RoundUp(rs.Resources)

	return rs, nil
}

// AggregatedRoundedTransactions fetches the rounded transactions of every
// configured user concurrently and concatenates them in configuration order.
//
// Any failure fails the whole call with the first failure observed. The
// result carries no pagination.
func (s *Service) AggregatedRoundedTransactions(ctx context.Context, since, until string) (domain.ResourceSet, error) {
	if _, err := time.Parse(domain.DateLayout, since); err != nil {
		return domain.ResourceSet{}, domain.ErrInvalidSinceDate
	}

	if _, err := time.Parse(domain.DateLayout, until); err != nil {
		return domain.ResourceSet{}, domain.ErrInvalidUntilDate
	}

	zerolog.Ctx(ctx).Debug().
		Int("users", len(s.users)).
		Str("since", since).
		Str("until", until).
		Msg("fetching aggregated rounded transactions")

	filters := domain.TransactionFilters{Since: since, Until: until}
	pages := make([][]domain.Transaction, len(s.users))

	var g errgroup.Group

	for i := range s.users {
		i, creds := i, s.users[i]

		g.Go(func() error {
			rs, err := s.RoundedTransactions(ctx, creds, filters)
			if err != nil {
				return err
			}

			pages[i] = rs.Resources

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ResourceSet{}, err
	}

	var n int
	for _, page := range pages {
		n += len(page)
	}

	resources := make([]domain.Transaction, 0, n)
	for _, page := range pages {
		resources = append(resources, page...)
	}

	return domain.ResourceSet{Resources: resources}, nil
}
