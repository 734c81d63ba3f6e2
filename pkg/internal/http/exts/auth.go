package exts

import (
	"crypto/subtle"
	"errors"
	"net/url"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultLoginURL = "/auth/login/"

var ErrUnauthenticated = errors.New("authentication required")

// AuthMiddleware resolves the principal of the request from a signed token.
// Requests without a valid token simply continue as anonymous.
func AuthMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ExtractToken(c)
		if len(token) == 0 || len(secret) == 0 {
			return c.Next()
		}

		username, err := ReadToken(secret, token)
		if err != nil {
			log.Debug().Err(err).Msg("Ignored an invalid access token.")
			return c.Next()
		}

		account, err := services.EnsureAccount(username)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Locals("user", account)

		return c.Next()
	}
}

func ExtractToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Cookies(viper.GetString("security.cookie_name"))
}

// ReadToken verifies an HS256 token and returns its subject.
func ReadToken(secret []byte, token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	} else if len(subject) == 0 {
		return "", errors.New("token has no subject")
	}
	return subject, nil
}

func NewToken(secret []byte, username string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: username,
	}).SignedString(secret)
}

func CurrentUser(c *fiber.Ctx) *models.Account {
	if user, ok := c.Locals("user").(models.Account); ok {
		return &user
	}
	return nil
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if !services.IsAuthenticated(CurrentUser(c)) {
		return ErrUnauthenticated
	}
	return nil
}

func RedirectToLogin(c *fiber.Ctx) error {
	login := viper.GetString("security.login_url")
	if len(login) == 0 {
		login = DefaultLoginURL
	}
	query := url.Values{"next": []string{c.OriginalURL()}}
	return c.Redirect(login+"?"+query.Encode(), fiber.StatusFound)
}

// EnsureAdministrator checks the static operator token of the admin endpoints.
func EnsureAdministrator(c *fiber.Ctx) error {
	expected := viper.GetString("security.admin_token")
	if len(expected) == 0 {
		return fiber.NewError(fiber.StatusForbidden, "administration is disabled")
	}
	provided := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "invalid administration token")
	}
	return c.Next()
}
