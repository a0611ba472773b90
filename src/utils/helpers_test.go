package utils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"vrms/src/config"
	"vrms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	customerId := uint(7)
	token, err := GenerateJWT("someone", 42, types.ROLE_CUSTOMER, &customerId)
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	assert.Nil(t, err)
	assert.True(t, tkn.Valid)
	assert.Equal(t, "someone", claims.Username)
	assert.Equal(t, types.ROLE_CUSTOMER, claims.Role)
	assert.Equal(t, fmt.Sprint(42), claims.Subject)
	if assert.NotNil(t, claims.CustomerID) {
		assert.Equal(t, customerId, *claims.CustomerID)
	}
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.Nil(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not a hash", "correct horse battery staple"))
}

func TestSaveSlipFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("slip", "receipt.png")
	assert.Nil(t, err)
	_, err = fw.Write([]byte("slip bytes"))
	assert.Nil(t, err)
	assert.Nil(t, mw.Close())

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/payments", &buf)
	ctx.Request.Header.Set("Content-Type", mw.FormDataContentType())

	file, err := ctx.FormFile("slip")
	assert.Nil(t, err)

	name, err := SaveSlipFile(ctx, file)
	assert.Nil(t, err)
	assert.True(t, strings.HasSuffix(name, "_receipt.png"))

	prefix, _, found := strings.Cut(name, "_")
	assert.True(t, found)
	_, err = uuid.Parse(prefix)
	assert.Nil(t, err)

	stored, err := os.ReadFile(path.Join(config.SlipDir(), name))
	assert.Nil(t, err)
	assert.Equal(t, "slip bytes", string(stored))
}

func TestInvalidateAvailableVehiclesWithoutRedis(t *testing.T) {
	// no REDIS_HOST configured: invalidation is a no-op instead of a panic
	assert.NotPanics(t, func() {
		InvalidateAvailableVehicles()
	})
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-09-01")
	assert.Nil(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.September, date.Month())
	assert.Equal(t, 1, date.Day())

	_, err = ParseDate("09/01/2026")
	assert.NotNil(t, err)

	_, err = ParseDate("")
	assert.NotNil(t, err)
}
