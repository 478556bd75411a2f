package security

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte("pontosync-test-secret-0123456789"))

func TestCreateAndParseDeviceToken(t *testing.T) {
	identity := &DeviceIdentity{
		FuncionarioID: 42,
		DeviceID:      "tablet-obra-07",
		Nome:          "João Operador",
	}

	token, err := CreateDeviceToken(identity, testSecret, 3600)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := ParseDeviceToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestParseDeviceTokenWrongSecret(t *testing.T) {
	token, err := CreateDeviceToken(&DeviceIdentity{FuncionarioID: 1, DeviceID: "d"}, testSecret, 3600)
	assert.NoError(t, err)

	other := base64.StdEncoding.EncodeToString([]byte("another-secret-another-secret-00"))
	_, err = ParseDeviceToken(token, other)
	assert.Error(t, err)
}

func TestParseDeviceTokenExpired(t *testing.T) {
	token, err := CreateDeviceToken(&DeviceIdentity{FuncionarioID: 1, DeviceID: "d"}, testSecret, -60)
	assert.NoError(t, err)

	_, err = ParseDeviceToken(token, testSecret)
	assert.Error(t, err)
}

func TestCreateDeviceTokenBadSecret(t *testing.T) {
	_, err := CreateDeviceToken(&DeviceIdentity{FuncionarioID: 1}, "not base64!!!", 3600)
	assert.Error(t, err)
}
