package firebase

import (
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
)

func TestClientOptions(t *testing.T) {
	assert.Empty(t, ClientOptions(&config.FirebaseConfig{}))
	assert.Len(t, ClientOptions(&config.FirebaseConfig{CredentialsPath: "/secrets/sa.json"}), 1)
}

func TestNewApp_RequiresConfig(t *testing.T) {
	_, err := NewApp(AppParams{Config: &config.Config{}})
	assert.Error(t, err)
}
