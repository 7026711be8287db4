package services

import (
	"context"
	"log"
	"time"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	mem "wander/pkg/memcache"
	"wander/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, accountId string) (*response_models.AccountResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
	mailService IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: buildAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user", // default role
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountId string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	out := buildAccountResponse(account)
	return &out, nil
}

// RequestPasswordReset always succeeds from the caller's point of view so
// the endpoint does not leak which emails exist.
func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("reset mail to %s failed: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func buildAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
		Bio:       account.Bio,
	}
}
