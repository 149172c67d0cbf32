package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/interiorpro/adminconsole/config"
	"github.com/interiorpro/adminconsole/internal/domain"
)

// adminProfile is the cached profile written at login. Placeholder for
// what a real authentication service would return.
var adminProfile = domain.Profile{
	Name:  "Admin",
	Email: "admin@interiordesign.com",
	Role:  "administrator",
}

// Gate admits or denies access to the dashboard against a single
// configured credential pair.
type Gate struct {
	username string
	hash     []byte
	secret   []byte
	store    Store
}

// NewGate builds the gate from config. When no precomputed hash is
// configured the plaintext placeholder password is hashed once here so
// comparisons never touch the plaintext again.
func NewGate(cfg config.SessionConfig, store Store) (*Gate, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash gate password")
		}
	}
	return &Gate{
		username: cfg.Username,
		hash:     hash,
		secret:   []byte(cfg.Secret),
		store:    store,
	}, nil
}

// Login checks the credential pair. On success it persists the session
// token and profile and returns the explicit session object. On
// failure nothing is persisted.
func (g *Gate) Login(username, password string) (*domain.Session, error) {
	if username != g.username ||
		bcrypt.CompareHashAndPassword(g.hash, []byte(password)) != nil {
		return nil, domain.E(domain.KindInvalidCredentials, "Invalid username or password")
	}

	now := time.Now()
	token, err := g.signToken(username, now)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}
	if err := g.store.Save(token, adminProfile); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}
	zap.L().Info("admin login", zap.String("username", username))
	return &domain.Session{Token: token, Profile: adminProfile, CreatedAt: now}, nil
}

// Resume restores a previously persisted session. A missing or
// tampered token yields no session; the stale state is cleared.
func (g *Gate) Resume() (*domain.Session, bool) {
	token, profile, ok, err := g.store.Load()
	if err != nil || !ok {
		return nil, false
	}
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		zap.L().Warn("discarding invalid persisted session", zap.Error(err))
		_ = g.store.Clear()
		return nil, false
	}
	issued := time.Time{}
	if iat, ok := claims["iat"].(float64); ok {
		issued = time.Unix(int64(iat), 0)
	}
	return &domain.Session{Token: token, Profile: profile, CreatedAt: issued}, true
}

// Logout clears the persisted session state unconditionally.
func (g *Gate) Logout() {
	if err := g.store.Clear(); err != nil {
		zap.L().Warn("clear session failed", zap.Error(err))
	}
}

// signToken issues the locally signed session artifact. There is no
// expiry: the session lives until logout.
func (g *Gate) signToken(username string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": adminProfile.Role,
		"iat":  now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
