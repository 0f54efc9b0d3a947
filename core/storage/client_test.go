package storage_test

import (
	"testing"

	"fiber-extras/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		wantErr  bool
	}{
		{"HostPort", "localhost:9000", false, false},
		{"HTTPScheme", "http://localhost:9000", false, false},
		{"HTTPSScheme", "https://s3.amazonaws.com", true, false},
		{"EmptyEndpoint", "", false, true},
		{"PathInEndpoint", "localhost:9000/bucket", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  tt.endpoint,
				AccessKey: "testkey",
				SecretKey: "testsecret",
				UseSSL:    tt.useSSL,
				Region:    "us-east-1",
			})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
