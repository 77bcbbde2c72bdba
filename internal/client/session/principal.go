package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Fyandono/project-maintenance-system/internal/client/perm"
	"github.com/Fyandono/project-maintenance-system/internal/common"
)

// Principal is the authenticated user identity decoded from the credential
// token at session start. It lives in memory for the session and is
// destroyed on logout or authentication rejection.
type Principal struct {
	Username     string
	Name         string
	Capabilities perm.Set
}

// Can reports whether the principal holds the capability.
func (p *Principal) Can(c perm.Capability) bool {
	if p == nil {
		return false
	}
	return p.Capabilities.Has(c)
}

// DecodePrincipal extracts the principal from the token payload. The
// signature is not checked here: the server is the verifier and rejects a
// tampered token with a 401; the client only mirrors the claims.
//
// Claims named "can_*" are capability flags. A name outside the fixed
// vocabulary is an error rather than a silent false, so a contract drift
// between client and server surfaces immediately. An expired token is
// reported as common.ErrInvalidToken.
func DecodePrincipal(token string) (*Principal, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.ErrInvalidToken
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return nil, fmt.Errorf("%w: token expired", common.ErrInvalidToken)
	}

	p := &Principal{Capabilities: perm.Set{}}

	if v, ok := claims["username"].(string); ok {
		p.Username = v
	}
	if v, ok := claims["name"].(string); ok {
		p.Name = v
	}

	for name, value := range claims {
		if !strings.HasPrefix(name, "can_") {
			continue
		}
		if !perm.Known(name) {
			return nil, fmt.Errorf("%w: unknown capability %q", common.ErrInvalidToken, name)
		}
		granted, ok := value.(bool)
		if !ok {
			// Anything but an explicit true denies.
			granted = false
		}
		p.Capabilities[perm.Capability(name)] = granted
	}

	return p, nil
}
