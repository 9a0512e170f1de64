package customer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/config"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

type fakeCustomerRepo struct {
	byEmail map[string]*models.Customer
	seq     int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byEmail: map[string]*models.Customer{}}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	r.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("cust-%d", r.seq)
	}
	r.byEmail[c.Email] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("customer not found")
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	if c, ok := r.byEmail[email]; ok {
		return c, nil
	}
	return nil, errors.New("customer not found")
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byEmail)), nil
}

func newAuthService(t *testing.T) (*DefaultCustomerService, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewDefaultCustomerService(newFakeCustomerRepo(), cache), cache
}

func registerJo(t *testing.T, svc *DefaultCustomerService) *AuthResult {
	t.Helper()
	res, err := svc.Register(context.Background(), &models.RegisterInput{
		Email:     "jo@example.com",
		Password:  "hunter22",
		FirstName: "Jo",
		LastName:  "Harper",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterPrimesAuthSession(t *testing.T) {
	svc, cache := newAuthService(t)
	res := registerJo(t, svc)

	require.NotEmpty(t, res.Token)
	assert.NoError(t, utils.CheckAuthSession(context.Background(), cache, res.Customer.ID, res.Token))
}

func TestLoginAuthenticatesAfterEarlierSession(t *testing.T) {
	svc, cache := newAuthService(t)
	ctx := context.Background()
	reg := registerJo(t, svc)

	// Another device's token currently holds the cache entry.
	require.NoError(t, utils.PrimeAuthSession(ctx, cache, reg.Customer.ID, "older-device-token"))

	res, err := svc.Login(ctx, &models.LoginInput{Email: "jo@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// The fresh login wins immediately; the older session is superseded.
	assert.NoError(t, utils.CheckAuthSession(ctx, cache, res.Customer.ID, res.Token))
	assert.ErrorIs(t,
		utils.CheckAuthSession(ctx, cache, reg.Customer.ID, "older-device-token"),
		utils.ErrSessionSuperseded)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	registerJo(t, svc)

	_, err := svc.Login(context.Background(), &models.LoginInput{Email: "jo@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	registerJo(t, svc)

	_, err := svc.Register(context.Background(), &models.RegisterInput{
		Email:     "JO@example.com",
		Password:  "another",
		FirstName: "Jo",
		LastName:  "Harper",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAdminLoginDisabledWithoutPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.AdminEmail = "admin@maids.com"
	config.AppConfig.AdminPassword = ""

	_, err := svc.AdminLogin(context.Background(), &models.LoginInput{
		Email: "admin@maids.com", Password: "",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
