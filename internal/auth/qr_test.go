package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewCredentialSigner("qr-secret")

	credential, err := signer.Sign("abc123", "2024-06-01")
	require.NoError(t, err)

	value, date, err := signer.Verify(credential)
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
	assert.Equal(t, "2024-06-01", date)
}

func TestCredentialSigner_TamperedCredential(t *testing.T) {
	t.Parallel()

	signer := NewCredentialSigner("qr-secret")

	credential, err := signer.Sign("abc123", "2024-06-01")
	require.NoError(t, err)

	_, _, err = signer.Verify(credential + "AA")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestCredentialSigner_WrongSecret(t *testing.T) {
	t.Parallel()

	credential, err := NewCredentialSigner("right-secret").Sign("abc123", "2024-06-01")
	require.NoError(t, err)

	_, _, err = NewCredentialSigner("wrong-secret").Verify(credential)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestCredentialSigner_MissingFields(t *testing.T) {
	t.Parallel()

	signer := NewCredentialSigner("qr-secret")

	noValue, err := signer.Sign("", "2024-06-01")
	require.NoError(t, err)
	_, _, err = signer.Verify(noValue)
	assert.ErrorIs(t, err, ErrMalformedPayload)

	noDate, err := signer.Sign("abc123", "")
	require.NoError(t, err)
	_, _, err = signer.Verify(noDate)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestCredentialSigner_NotAToken(t *testing.T) {
	t.Parallel()

	_, _, err := NewCredentialSigner("qr-secret").Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
