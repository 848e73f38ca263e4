package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeyToPath(t *testing.T) {
	assert.Equal(t, "postgres.host", envKeyToPath("POSTGRES_HOST"))
	assert.Equal(t, "auth.adminkey", envKeyToPath("AUTH_ADMINKEY"))
	assert.Equal(t, "env.log.level", envKeyToPath("ENV_LOG_LEVEL"))
	assert.Equal(t, "port", envKeyToPath("PORT"))
}
