package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMakeAndValidateJWT(t *testing.T) {
	type testCase struct {
		name          string
		correctSecret string
		secretToCheck string
		hasError      bool
		expiresIn     time.Duration
	}
	testCases := []testCase{
		{
			name:          "valid",
			correctSecret: "my-secret",
			secretToCheck: "my-secret",
			expiresIn:     time.Hour,
			hasError:      false,
		},
		{
			name:          "expired",
			correctSecret: "my-secret",
			secretToCheck: "my-secret",
			expiresIn:     -time.Hour,
			hasError:      true,
		},
		{
			name:          "invalid_secret",
			correctSecret: "my-secret",
			secretToCheck: "wrong-secret",
			expiresIn:     time.Hour,
			hasError:      true,
		},
	}
	userID := uuid.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := MakeJWT(userID, tc.correctSecret, tc.expiresIn)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			parsedID, err := ValidateJWT(token, tc.secretToCheck)
			assert.Equal(t, err != nil, tc.hasError)
			if !tc.hasError {
				assert.Equal(t, userID, parsedID)
			}
		})
	}
}

func makeForeignJWT(t *testing.T, userID uuid.UUID, issuer string, secretKey string) string {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		Subject:   userID.String(),
	})
	signedToken, err := token.SignedString([]byte(secretKey))
	assert.NoError(t, err)
	return signedToken
}

func TestValidateJWT_Issuer(t *testing.T) {
	secretKey := "my-secret"
	userID := uuid.New()
	type testCase struct {
		name     string
		issuer   string
		hasError bool
	}
	testCases := []testCase{
		{name: "own_issuer", issuer: "book-tracker", hasError: false},
		{name: "foreign_issuer", issuer: "some-other-service", hasError: true},
		{name: "no_issuer", issuer: "", hasError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token := makeForeignJWT(t, userID, tc.issuer, secretKey)
			parsedID, err := ValidateJWT(token, secretKey)
			assert.Equal(t, err != nil, tc.hasError)
			if !tc.hasError {
				assert.Equal(t, userID, parsedID)
			}
		})
	}
}

func TestGetBearerToken(t *testing.T) {
	token := "some_token"
	type testCase struct {
		name          string
		headerKey     string
		headerValue   string
		expectedError error
	}
	testCases := []testCase{
		{
			name:          "success",
			headerKey:     "Authorization",
			headerValue:   "Bearer " + token,
			expectedError: nil,
		},
		{
			name:          "no_token",
			headerKey:     "Authorization",
			headerValue:   "Another header ",
			expectedError: errors.New("no token in header"),
		},
		{
			name:          "no_header",
			headerKey:     "",
			headerValue:   "",
			expectedError: errors.New("no authorization header"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			headers.Add(tc.headerKey, tc.headerValue)
			parsedToken, err := GetBearerToken(headers)
			assert.Equal(t, err, tc.expectedError)
			if tc.expectedError == nil {
				assert.Equal(t, token, parsedToken)
			}
		})
	}
}

func TestTokenResolver(t *testing.T) {
	secretKey := "my-secret"
	userID := uuid.New()
	type testCase struct {
		name      string
		makeToken func() string
		hasError  bool
	}
	testCases := []testCase{
		{
			name: "valid_token",
			makeToken: func() string {
				token, _ := MakeJWT(userID, secretKey, time.Hour)
				return token
			},
			hasError: false,
		},
		{
			name: "expired_token",
			makeToken: func() string {
				token, _ := MakeJWT(userID, secretKey, -time.Hour)
				return token
			},
			hasError: true,
		},
		{
			name:      "no_token",
			makeToken: func() string { return "" },
			hasError:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/books", nil)
			if token := tc.makeToken(); token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			resolvedID, err := TokenResolver{SecretKey: secretKey}.ResolveUser(r)
			assert.Equal(t, err != nil, tc.hasError)
			if !tc.hasError {
				assert.Equal(t, userID, resolvedID)
			}
		})
	}
}
