package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ScopeLedger = "ledger"
	ScopeAdmin  = "admin"

	adminProcedurePrefix = "Admin/"
	anonymousSubject     = "anonymous"
)

var (
	ErrUnauthenticated  = errors.New("missing or invalid credentials")
	ErrPermissionDenied = errors.New("caller may not invoke this procedure")
)

// AuthorizationRequest is what a policy sees of an incoming call
type AuthorizationRequest struct {
	Procedure     string
	Authorization string
	RemoteAddr    string
}

// Principal is the authenticated caller
type Principal struct {
	Subject string
	Scopes  []string
}

func (p *Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

// AllowAllPolicy admits every call as an anonymous principal
type AllowAllPolicy struct{}

func NewAllowAllPolicy() AuthorizationPolicy {
	return AllowAllPolicy{}
}

func (AllowAllPolicy) Authorize(_ context.Context, _ AuthorizationRequest) (*Principal, error) {
	return &Principal{Subject: anonymousSubject, Scopes: []string{ScopeLedger, ScopeAdmin}}, nil
}

// LedgerClaims are the JWT claims accepted by BearerTokenPolicy
type LedgerClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// BearerTokenPolicy accepts HS256 tokens signed with a shared secret.
// Admin procedures additionally need the admin scope.
type BearerTokenPolicy struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewBearerTokenPolicy(secret, issuer string) *BearerTokenPolicy {
	return &BearerTokenPolicy{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

func (p *BearerTokenPolicy) Authorize(_ context.Context, req AuthorizationRequest) (*Principal, error) {
	raw, ok := strings.CutPrefix(req.Authorization, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrUnauthenticated
	}

	claims := &LedgerClaims{}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		options = append(options, jwt.WithIssuer(p.issuer))
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, options...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	principal := &Principal{
		Subject: claims.Subject,
		Scopes:  strings.Fields(claims.Scope),
	}

	required := ScopeLedger
	if strings.HasPrefix(req.Procedure, adminProcedurePrefix) {
		required = ScopeAdmin
	}
	if !principal.HasScope(required) {
		return nil, fmt.Errorf("%w: %s requires scope %q", ErrPermissionDenied, req.Procedure, required)
	}

	return principal, nil
}

// IssueToken signs a token this policy will accept
func (p *BearerTokenPolicy) IssueToken(subject string, scopes []string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := LedgerClaims{
		Scope: strings.Join(scopes, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
