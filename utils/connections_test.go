package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/testutils"
	"go.uber.org/zap"
)

func Test_NewDatabase__should_return_error_when_some_connection_var_is_undefined(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{
		environment.MongoUser:     "",
		environment.MongoPassword: "password123",
		environment.MongoHost:     "127.0.0.1:8003",
		environment.MongoDatabase: "tender_portal",
	})
	defer restore()

	env := environment.NewEnv(zap.NewNop())

	_, err := NewDatabase(zap.NewNop(), env)
	assert.Error(t, err)
}

func Test_NewRedisClient__should_return_error_when_address_is_undefined(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{
		environment.RedisAddr: "",
	})
	defer restore()

	env := environment.NewEnv(zap.NewNop())

	_, err := NewRedisClient(zap.NewNop(), env)
	assert.Error(t, err)
}
