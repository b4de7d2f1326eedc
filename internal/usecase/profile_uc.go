package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/session"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.ActorRole

	// Partner-only profile fields.
	CompanyName string
	Description string
	Website     string
	LogoURL     string
}

// TokenClaims travel inside the JWT and identify the acting user on every
// authenticated call.
type TokenClaims struct {
	ActorID string           `json:"actorId"`
	Email   string           `json:"email"`
	Role    entity.ActorRole `json:"role"`
	jwt.RegisteredClaims
}

// ProfileUsecase covers the account lifecycle: registration (always pending
// until an admin decides), login/logout, and the public partner directory.
type ProfileUsecase struct {
	actorRepo     repository.ActorRepository
	sessions      session.Store
	log           logger.Logger
	jwtSecret     []byte
	tokenTTL      time.Duration
	startingGrant int64
}

func NewProfileUsecase(
	actorRepo repository.ActorRepository,
	sessions session.Store,
	log logger.Logger,
	jwtSecret string,
	tokenTTL time.Duration,
	startingGrant int64,
) *ProfileUsecase {
	return &ProfileUsecase{
		actorRepo:     actorRepo,
		sessions:      sessions,
		log:           log,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
		startingGrant: startingGrant,
	}
}

// Register creates a new volunteer or partner account. The account starts
// pending regardless of input and is credited the configured starting grant.
func (uc *ProfileUsecase) Register(ctx context.Context, input RegisterInput) (*entity.Actor, error) {
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ProfileUsecase.Register: hashing password: %w", err)
	}

	actor, err := entity.NewActor(input.Name, input.Email, string(hash), input.Role, uc.startingGrant)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if input.Role == entity.RolePartner {
		actor.PartnerProfile = &entity.PartnerProfile{
			CompanyName: input.CompanyName,
			Description: input.Description,
			Website:     input.Website,
			LogoURL:     input.LogoURL,
		}
	}

	createdID, err := uc.actorRepo.Create(ctx, actor)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("ProfileUsecase.Register: %w", err)
	}
	actor.ID = createdID

	uc.log.Infof("Actor %s registered: email=%s role=%s, pending approval", actor.ID, actor.Email, actor.Role)
	return actor, nil
}

// Login verifies credentials and issues a signed token. The token is also
// recorded in the session store so Logout can invalidate it server side.
func (uc *ProfileUsecase) Login(ctx context.Context, email, password string) (string, *entity.Actor, error) {
	actor, err := uc.actorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("ProfileUsecase.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(actor.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := TokenClaims{
		ActorID: actor.ID,
		Email:   actor.Email,
		Role:    actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("ProfileUsecase.Login: signing token: %w", err)
	}

	if uc.sessions != nil {
		if err := uc.sessions.Set(ctx, actor.ID, token, uc.tokenTTL); err != nil {
			uc.log.Warnf("Failed to record session for actor %s: %v", actor.ID, err)
		}
	}

	uc.log.Infof("Actor %s logged in", actor.ID)
	return token, actor, nil
}

func (uc *ProfileUsecase) Logout(ctx context.Context, actorID string) error {
	if uc.sessions == nil {
		return nil
	}
	if err := uc.sessions.Clear(ctx, actorID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("ProfileUsecase.Logout: %w", err)
	}
	return nil
}

// ParseToken validates a presented token and returns its claims. A token
// whose session has been cleared is rejected even if its signature and
// expiry are still good.
func (uc *ProfileUsecase) ParseToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	if uc.sessions != nil {
		stored, err := uc.sessions.Get(ctx, claims.ActorID)
		if err != nil || stored != tokenString {
			return nil, ErrInvalidCredentials
		}
	}
	return claims, nil
}

func (uc *ProfileUsecase) GetProfile(ctx context.Context, actorID string) (*entity.Actor, error) {
	actor, err := uc.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("ProfileUsecase.GetProfile: %w", err)
	}
	return actor, nil
}

// ListPartners returns the public partner directory: approved partner
// accounts only.
func (uc *ProfileUsecase) ListPartners(ctx context.Context, page, pageSize int) ([]*entity.Actor, int64, error) {
	partners, total, err := uc.actorRepo.List(ctx, repository.ListActorsParams{
		Role:     entity.RolePartner,
		Status:   entity.ApprovalApproved,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("ProfileUsecase.ListPartners: %w", err)
	}
	return partners, total, nil
}

// ListActors is the admin view over all accounts, optionally narrowed by
// role or status.
func (uc *ProfileUsecase) ListActors(ctx context.Context, params repository.ListActorsParams) ([]*entity.Actor, int64, error) {
	actors, total, err := uc.actorRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("ProfileUsecase.ListActors: %w", err)
	}
	return actors, total, nil
}

func (uc *ProfileUsecase) DeleteActor(ctx context.Context, actorID string) error {
	if err := uc.actorRepo.Delete(ctx, actorID); err != nil {
		return fmt.Errorf("ProfileUsecase.DeleteActor: %w", err)
	}
	if uc.sessions != nil {
		_ = uc.sessions.Clear(ctx, actorID)
	}
	uc.log.Infof("Actor %s deleted", actorID)
	return nil
}
