//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go_vocab_trivia/internal/config"
	"go_vocab_trivia/internal/middleware"
	"go_vocab_trivia/internal/model"
	"go_vocab_trivia/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, req *model.UpdateAccountRequest) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HashPassword はbcryptでパスワードをハッシュ化します
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はユーザーを作成し、そのままログイン状態のトークンを返します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
	}

	now := s.now()
	user := &model.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  req.DisplayName,
		LastLoginAt:  &now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists")
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Info("User registered", "user_id", user.UserID)
	return resp, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	logger := middleware.GetLogger(ctx).With("email", email)
	authFailed := model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, authFailed
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, authFailed
	}

	now := s.now()
	if err := s.userRepo.Update(ctx, s.db, user.UserID, map[string]interface{}{"last_login_at": now}); err != nil {
		// ログイン自体は成功扱い
		logger.Warn("Failed to update last login time", "error", err, "user_id", user.UserID)
	} else {
		user.LastLoginAt = &now
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Info("Login successful", "user_id", user.UserID)
	return resp, nil
}

func (s *authService) issueToken(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.JWT.AccessTokenTTL)
	claims := &jwt.RegisteredClaims{
		Issuer:    s.cfg.App.Name,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	return &model.AuthResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        model.NewUserResponse(user),
	}, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}

// UpdateAccount は表示名を変更します
func (s *authService) UpdateAccount(ctx context.Context, userID uuid.UUID, req *model.UpdateAccountRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String())
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "表示名は必須項目です。", "display_name", model.ErrInvalidInput)
	}

	if err := s.userRepo.Update(ctx, s.db, userID, map[string]interface{}{"display_name": name}); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to update display name", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの更新に失敗しました。", "", err)
	}

	logger.Info("Account updated")
	return s.GetUser(ctx, userID)
}
