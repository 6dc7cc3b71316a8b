package jwt

import "time"

// IManager issues and verifies HS256 tokens for internal service callers.
type IManager interface {
	GenerateToken(subject string, ttl time.Duration) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

// New creates a new JWT manager.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
	}, nil
}
