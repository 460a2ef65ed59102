package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"parcel-delivery/constants"
	"parcel-delivery/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RoleLookup resolves the role stored for a verified email.
type RoleLookup interface {
	RoleOf(email string) (string, error)
}

// AuthMiddleware verifies bearer credentials against the identity
// provider's RSA public key and gates routes by the caller's role.
type AuthMiddleware struct {
	publicKeyURL string
	roles        RoleLookup

	mu  sync.Mutex
	key *rsa.PublicKey
}

func New(publicKeyURL string, roles RoleLookup) *AuthMiddleware {
	return &AuthMiddleware{
		publicKeyURL: publicKeyURL,
		roles:        roles,
	}
}

// FetchPublicKey fetches the verification key from the given URL.
func FetchPublicKey(url string) (*rsa.PublicKey, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	keyResponse := struct {
		Key string `json:"key"`
	}{}
	if err := json.Unmarshal(body, &keyResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal public key response: %w", err)
	}

	block, _ := pem.Decode([]byte(keyResponse.Key))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPubKey, ok := pubKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPubKey, nil
}

func (m *AuthMiddleware) publicKey() (*rsa.PublicKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key != nil {
		return m.key, nil
	}
	key, err := FetchPublicKey(m.publicKeyURL)
	if err != nil {
		return nil, err
	}
	m.key = key
	return key, nil
}

// verifyToken parses and validates a bearer token and returns its claims.
func (m *AuthMiddleware) verifyToken(tokenString string) (jwt.MapClaims, error) {
	publicKey, err := m.publicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// RequireAuth validates the Authorization header and stores the verified
// email in locals. Missing or invalid credentials yield 401.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authorization token missing",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid authorization header format",
			})
		}

		claims, err := m.verifyToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		email, _ := claims["email"].(string)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Email missing in token",
			})
		}

		c.Locals("user", claims)
		c.Locals("user_email", email)
		return c.Next()
	}
}

// RequireRole gates a route to callers whose stored role matches. Must run
// after RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("user_email").(string)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authorization token missing",
			})
		}

		got, err := m.roles.RoleOf(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to resolve user role",
			})
		}
		if got != role {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// RequireAdmin gates a route to admins.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return m.RequireRole(constants.RoleAdmin)
}

// RequireRider gates a route to riders.
func (m *AuthMiddleware) RequireRider() fiber.Handler {
	return m.RequireRole(constants.RoleRider)
}

// RequireSelf forces the email query parameter to match the verified
// caller. Admins may query any email. Must run after RequireAuth.
func (m *AuthMiddleware) RequireSelf(queryParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("user_email").(string)
		requested := c.Query(queryParam)
		if requested == "" || requested == email {
			return c.Next()
		}

		role, err := m.roles.RoleOf(email)
		if err == nil && role == constants.RoleAdmin {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden: email mismatch",
		})
	}
}

// CallerEmail returns the verified email stored by RequireAuth.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}
