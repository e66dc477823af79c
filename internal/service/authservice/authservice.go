package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
	"github.com/propdesk/credit-auction/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Broker, error)
	Create(ctx context.Context, broker *domain.Broker) (*domain.Broker, error)
}

// Wallet is the slice of the wallet service signup needs: create the wallet
// and credit the signup bonus.
type Wallet interface {
	CreateWallet(ctx context.Context, brokerID int) (*domain.Wallet, error)
	Credit(ctx context.Context, params walletservice.CreditParams) (*domain.Transaction, error)
}

type Service struct {
	brokerRepo  Repo
	wallet      Wallet
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	signupBonus int64
}

func New(repo Repo, wallet Wallet, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, signupBonus int64) *Service {
	return &Service{
		brokerRepo:  repo,
		wallet:      wallet,
		hashService: hashService,
		jwtService:  jwtService,
		signupBonus: signupBonus,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Broker, error) {
	existingBroker, err := s.brokerRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find broker: ", zap.Error(err))
		return nil, err
	}
	if existingBroker != nil {
		zap.L().Info("broker already exists, login: ", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	broker := &domain.Broker{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newBroker, err := s.brokerRepo.Create(ctx, broker)
	if err != nil {
		zap.L().Error("can't create broker: ", zap.Error(err))
		return nil, err
	}

	if _, err = s.wallet.CreateWallet(ctx, newBroker.ID); err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}
	if s.signupBonus > 0 {
		_, err = s.wallet.Credit(ctx, walletservice.CreditParams{
			BrokerID:    newBroker.ID,
			Amount:      s.signupBonus,
			Type:        domain.TxTypeSignupBonus,
			Description: "signup bonus",
		})
		if err != nil {
			zap.L().Error("can't credit signup bonus: ", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("broker successfully registered", zap.String("login", login))
	return broker, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Broker, error) {
	broker, err := s.brokerRepo.FindByLogin(ctx, login)
	if err != nil || broker == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(broker.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("broker successfully authenticated", zap.String("login", login))
	return broker, nil
}

func (s *Service) GenerateToken(brokerID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(brokerID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
