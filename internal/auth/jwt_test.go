package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", "gymops", time.Hour)

	token, err := m.Issue(domain.Principal{Role: domain.RoleMember, SubjectID: "m1"})
	require.NoError(t, err)

	p, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, p.Role)
	assert.Equal(t, "m1", p.SubjectID)
}

func TestManager_Issue_UnknownRole(t *testing.T) {
	m := NewManager("secret", "gymops", time.Hour)

	_, err := m.Issue(domain.Principal{Role: "owner", SubjectID: "x"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	token, err := NewManager("one", "gymops", time.Hour).Issue(domain.Principal{Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = NewManager("two", "gymops", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("secret", "gymops", -time.Minute)

	token, err := m.Issue(domain.Principal{Role: domain.RoleTrainer, SubjectID: "t1"})
	require.NoError(t, err)

	_, err = m.Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_WrongIssuer(t *testing.T) {
	token, err := NewManager("secret", "other", time.Hour).Issue(domain.Principal{Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = NewManager("secret", "gymops", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gymops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("secret", "gymops", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_MemberWithoutSubject(t *testing.T) {
	m := NewManager("secret", "gymops", time.Hour)

	token, err := m.Issue(domain.Principal{Role: domain.RoleMember})
	require.NoError(t, err)

	_, err = m.Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
