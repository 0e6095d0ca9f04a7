package services

import (
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/softpro2020/foodland/apperr"
	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/repository"
	"github.com/softpro2020/foodland/utils"
)

// AccountService constructs and authenticates accounts. It owns username
// normalization and the regular-vs-superuser creation paths.
type AccountService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAccountService(repo *repository.UserRepository, secret string, ttl time.Duration) *AccountService {
	return &AccountService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// NormalizeUsername folds visually-identical usernames onto one byte
// form (Unicode NFKC). Idempotent: normalizing twice changes nothing.
func NormalizeUsername(username string) string {
	return norm.NFKC.String(username)
}

// NewAccount validates the inputs and builds an account without
// persisting it. Callers that need the account inside a wider
// transaction (customer signup) create the returned value themselves.
func (s *AccountService) NewAccount(username string, role entity.Role, password, email string) (*entity.User, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return nil, apperr.Validation("username", "username is required")
	}
	if !role.Valid() {
		return nil, apperr.Validation("role", "unknown role")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, StoreErr(err, "username")
	}
	if count > 0 {
		return nil, apperr.Conflict("username", "username already registered")
	}
	if email != "" {
		taken, err := s.userRepo.CountByEmail(email)
		if err != nil {
			return nil, StoreErr(err, "email")
		}
		if taken > 0 {
			return nil, apperr.Conflict("email", "email already registered")
		}
	}

	user := &entity.User{
		Username: username,
		Role:     role,
		IsActive: true,
	}
	if email != "" {
		user.Email = &email
	}
	if role == entity.RoleCustomer {
		user.Person = nil
		user.PersonID = nil
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.ErrInternal, "hash password failed")
		}
		user.Password = string(hashed)
	}

	return user, nil
}

// CreateAccount builds and persists a regular account. For customer-role
// accounts the person link is explicitly left unset; biography is
// attached later, if ever. The password is stored only as a bcrypt hash.
func (s *AccountService) CreateAccount(username string, role entity.Role, password, email string) (*entity.User, error) {
	user, err := s.NewAccount(username, role, password, email)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, StoreErr(err, "username")
	}

	log.WithFields(log.Fields{"username": user.Username, "role": user.Role}).Info("account created")
	return user, nil
}

// CreateSuperuser creates an admin-role account and marks it as an
// administrator.
func (s *AccountService) CreateSuperuser(username, password string) (*entity.User, error) {
	user, err := s.CreateAccount(username, entity.RoleAdmin, password, "")
	if err != nil {
		return nil, err
	}

	user.IsAdmin = true
	if err := s.userRepo.DB.Model(user).Update("is_admin", true).Error; err != nil {
		return nil, StoreErr(err, "username")
	}
	return user, nil
}

// Login checks credentials, stamps last_login and issues a JWT.
func (s *AccountService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(NormalizeUsername(username))
	if err != nil {
		return "", nil, apperr.Wrap(err, apperr.ErrUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperr.Forbidden("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Wrap(err, apperr.ErrUnauthorized, "invalid credentials")
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return "", nil, StoreErr(err, "username")
	}
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Wrap(err, apperr.ErrInternal, "cannot generate token")
	}

	return token, user, nil
}

func (s *AccountService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, StoreErr(err, "user")
	}
	return user, nil
}

func (s *AccountService) List(f repository.UserFilter) ([]entity.User, error) {
	users, err := s.userRepo.List(f)
	if err != nil {
		return nil, StoreErr(err, "user")
	}
	return users, nil
}

// SetActive applies the bulk activate/deactivate action to an id set.
func (s *AccountService) SetActive(ids []uint, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("ids", "no accounts selected")
	}
	n, err := s.userRepo.SetActive(ids, active)
	if err != nil {
		return 0, StoreErr(err, "user")
	}
	return n, nil
}
