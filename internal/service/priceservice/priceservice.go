package priceservice

import (
	"context"
	"errors"

	"github.com/propdesk/credit-auction/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindPrices(ctx context.Context) ([]domain.CreditPrice, error)
	FindPackages(ctx context.Context) ([]domain.CreditPackage, error)
	FindPackageByID(ctx context.Context, id int) (*domain.CreditPackage, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrPackageNotFound = errors.New("credit package not found")

func (s *Service) GetPrices(ctx context.Context) ([]domain.CreditPrice, error) {
	prices, err := s.repo.FindPrices(ctx)
	if err != nil {
		zap.L().Error("failed to get credit prices", zap.Error(err))
		return nil, err
	}
	return prices, nil
}

func (s *Service) GetPackages(ctx context.Context) ([]domain.CreditPackage, error) {
	packages, err := s.repo.FindPackages(ctx)
	if err != nil {
		zap.L().Error("failed to get credit packages", zap.Error(err))
		return nil, err
	}
	return packages, nil
}

func (s *Service) GetPackage(ctx context.Context, id int) (*domain.CreditPackage, error) {
	pkg, err := s.repo.FindPackageByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get credit package", zap.Error(err))
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}
