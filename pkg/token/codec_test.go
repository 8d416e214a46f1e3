package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCodec_IssueVerify(t *testing.T) {
	c := NewCodec(testSecret)

	tok, err := c.Issue("alice", time.Minute)
	require.NoError(t, err)

	sub, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestCodec_IssueProducesDistinctTokens(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewCodec(testSecret, WithClock(fixedClock(now)))

	a, err := c.Issue("alice", time.Minute)
	require.NoError(t, err)
	b, err := c.Issue("alice", time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCodec_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewCodec(testSecret, WithClock(fixedClock(issuedAt)))

	tok, err := issuer.Issue("alice", time.Minute)
	require.NoError(t, err)

	for _, after := range []time.Duration{time.Minute, time.Minute + time.Second, 24 * time.Hour} {
		verifier := NewCodec(testSecret, WithClock(fixedClock(issuedAt.Add(after))))
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, ErrExpired, "after %s", after)
	}

	stillValid := NewCodec(testSecret, WithClock(fixedClock(issuedAt.Add(59*time.Second))))
	_, err = stillValid.Verify(tok)
	require.NoError(t, err)
}

func TestCodec_NegativeTTLIsExpired(t *testing.T) {
	c := NewCodec(testSecret)

	tok, err := c.Issue("alice", -time.Second)
	require.NoError(t, err)

	_, err = c.Verify(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec(testSecret)

	for n := 0; n < 20; n++ {
		tok, err := c.Issue("alice", time.Hour)
		require.NoError(t, err)

		start := strings.LastIndex(tok, ".") + 1
		require.Less(t, start, len(tok))

		for i := start; i < len(tok); i++ {
			for bit := 0; bit < 8; bit++ {
				b := []byte(tok)
				b[i] ^= 1 << bit

				_, err := c.Verify(string(b))
				require.ErrorIs(t, err, ErrSignatureInvalid, "byte %d bit %d: %q", i-start, bit, b[i])
			}
		}
	}
}

func TestCodec_DotInSignature(t *testing.T) {
	c := NewCodec(testSecret)

	tok, err := c.Issue("alice", time.Hour)
	require.NoError(t, err)

	dot := strings.LastIndex(tok, ".")
	b := []byte(tok)
	b[dot+2] = '.'

	_, err = c.Verify(string(b))
	require.ErrorIs(t, err, ErrSignatureInvalid)

	_, err = c.Verify(tok + ".")
	require.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodec_BrokenHeaderIsMalformed(t *testing.T) {
	c := NewCodec(testSecret)

	tok, err := c.Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = c.Verify("!" + tok[1:])
	require.ErrorIs(t, err, ErrMalformed)

	_, err = c.Verify("only.two")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestCodec_WrongSecret(t *testing.T) {
	tok, err := NewCodec([]byte("other-secret-other-secret-other!")).Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(tok)
	require.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec(testSecret)

	cases := []string{
		"",
		"abc",
		"a.b",
		"not-base64!.payload.sig",
		"eyJhbGciOiJIUzI1NiJ9.%%%.c2ln",
	}

	for _, tc := range cases {
		_, err := c.Verify(tc)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tc)
	}
}

func TestCodec_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(tok)
	require.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodec_MissingExpiryIsUnspecified(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(tok)
	require.ErrorIs(t, err, ErrUnspecified)
}

func TestCodec_NotYetValidIsUnspecified(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "alice",
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(tok)
	require.ErrorIs(t, err, ErrUnspecified)
}
