package auth

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Distinct verification outcomes for a scanned credential. Structure or
// signature problems and incomplete payloads are reported separately so the
// caller can surface each rejection cause on its own.
var (
	ErrInvalidCredential = errors.New("credential signature or structure invalid")
	ErrMalformedPayload  = errors.New("credential payload incomplete")
)

// CredentialSigner wraps the raw daily token value and its calendar date in a
// tamper-evident envelope. The envelope carries no expiry of its own; the
// verifier compares the embedded date against today.
type CredentialSigner struct {
	secret []byte
}

// NewCredentialSigner builds a signer bound to the shared secret.
func NewCredentialSigner(secret string) *CredentialSigner {
	return &CredentialSigner{secret: []byte(secret)}
}

type credentialClaims struct {
	TokenValue string `json:"t"`
	Date       string `json:"d"`
	jwt.RegisteredClaims
}

// Sign produces the signed credential for a token value and date.
func (s *CredentialSigner) Sign(tokenValue, date string) (string, error) {
	claims := &credentialClaims{TokenValue: tokenValue, Date: date}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the envelope and returns the embedded token value and date.
// Any mutation of the credential fails the signature check before the payload
// is inspected.
func (s *CredentialSigner) Verify(credential string) (tokenValue, date string, err error) {
	parsed, err := jwt.ParseWithClaims(credential, &credentialClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*credentialClaims)
	if !ok || !parsed.Valid {
		return "", "", ErrInvalidCredential
	}
	if claims.TokenValue == "" || claims.Date == "" {
		return "", "", ErrMalformedPayload
	}
	return claims.TokenValue, claims.Date, nil
}
