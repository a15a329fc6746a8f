package service

import (
	"context"

	"github.com/ecodeclub/jobreview/internal/stats/internal/domain"
	"github.com/ecodeclub/jobreview/internal/stats/internal/repository"
	"github.com/ecodeclub/jobreview/internal/user"
	"golang.org/x/sync/errgroup"
)

// companyTop 公司榜只展示前 20
const companyTop = 20

type StatsService interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}

type statsService struct {
	repo    repository.StatsRepository
	userSvc user.UserService
}

func NewStatsService(repo repository.StatsRepository, userSvc user.UserService) StatsService {
	return &statsService{
		repo:    repo,
		userSvc: userSvc,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var (
		eg  errgroup.Group
		res domain.Dashboard
	)
	eg.Go(func() error {
		var err error
		res.TotalUsers, err = s.userSvc.Total(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalReviews, err = s.repo.TotalReviews(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Companies, err = s.repo.Companies(ctx, companyTop)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Ratings, err = s.repo.Ratings(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Locations, res.AvgPayByLocation, err = s.repo.Locations(ctx)
		return err
	})
	return res, eg.Wait()
}
