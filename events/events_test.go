package events

import (
	"context"
	"testing"

	"aim/go/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	tests := []struct {
		Title    string
		Vars     map[string]string
		Expected bool
	}{
		{
			Title: "All set",
			Vars: map[string]string{
				"RABBITMQ_HOST":     "rabbit:5672",
				"RABBITMQ_USER":     "guest",
				"RABBITMQ_PASSWORD": "guest",
			},
			Expected: true,
		},
		{
			Title: "Missing password",
			Vars: map[string]string{
				"RABBITMQ_HOST":     "rabbit:5672",
				"RABBITMQ_USER":     "guest",
				"RABBITMQ_PASSWORD": "",
			},
			Expected: false,
		},
		{
			Title: "Nothing set",
			Vars: map[string]string{
				"RABBITMQ_HOST":     "",
				"RABBITMQ_USER":     "",
				"RABBITMQ_PASSWORD": "",
			},
			Expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			defer helpers.TempEnvVars(tt.Vars)()
			assert.Equal(t, tt.Expected, Configured())
		})
	}
}

func TestPublish_Unconfigured(t *testing.T) {
	defer helpers.TempEnvVars(map[string]string{
		"RABBITMQ_HOST":     "",
		"RABBITMQ_USER":     "",
		"RABBITMQ_PASSWORD": "",
	})()
	err := Publish(context.Background(), "data_collect", []byte(`{}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete RabbitMQ environment variables")
}
