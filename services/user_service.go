package services

import (
	"net/http"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/utils"
)

type UserService struct {
	users     *repositories.UserRepo
	jwtSecret string
}

func NewUserService(users *repositories.UserRepo, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CalorieGoal float64
}

// UserProfile is the sanitized user shape returned by the API. The password
// hash never leaves the service layer.
type UserProfile struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	CalorieGoal float64 `json:"calorieGoal,omitempty"`
	Role        string  `json:"role"`
}

// Register creates an account. The first user ever registered is promoted to
// admin; the check is a pure function of the store size at call time, so the
// rule keeps holding even after every account is created through this path.
func (s *UserService) Register(in RegisterInput) (*UserProfile, error) {
	if _, exists := s.users.FindByEmail(in.Email); exists {
		return nil, validationError("Email já cadastrado")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if s.users.Count() == 0 {
		role = models.RoleAdmin
	} else if role == "" {
		role = models.RoleUser
	}

	goal := in.CalorieGoal
	if goal == 0 {
		goal = models.DefaultCalorieGoal
	}

	user, err := s.users.Create(models.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hashed,
		Role:        role,
		CalorieGoal: goal,
	})
	if err != nil {
		return nil, err
	}
	return &UserProfile{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// Login verifies the credentials and mints a signed token carrying the
// requester identity and role.
func (s *UserService) Login(email, password string) (string, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok || !utils.CheckPasswordHash(password, user.Password) {
		return "", NewHTTPError(http.StatusUnauthorized, "Credenciais inválidas")
	}
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Role)
}

func (s *UserService) GetProfile(userID string) (*UserProfile, error) {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return nil, notFoundError("Usuário não encontrado")
	}
	return &UserProfile{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		CalorieGoal: user.CalorieGoal,
		Role:        user.Role,
	}, nil
}
