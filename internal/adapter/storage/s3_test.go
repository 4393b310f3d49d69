package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-match/internal/config/configs"
	"trial-match/internal/core/port"
)

func TestObjectKeyAndURL(t *testing.T) {
	s, err := NewS3Storage(configs.S3{
		Endpoint:       "http://minio:9000",
		PublicEndpoint: "https://cdn.example.com/",
		Region:         "us-east-1",
		Bucket:         "images",
	})
	require.NoError(t, err)
	s.newID = func() string { return "0b7c" }

	key := s.key(port.UploadObject{Prefix: "/campaigns/7/", FileName: "menu.png"})
	assert.Equal(t, "campaigns/7/0b7c-menu.png", key)
	assert.Equal(t, "https://cdn.example.com/images/campaigns/7/0b7c-menu.png", s.publicURL(key))
}

func TestPublicEndpointDefaultsToEndpoint(t *testing.T) {
	s, err := NewS3Storage(configs.S3{Endpoint: "http://minio:9000", Bucket: "images"})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/images/a", s.publicURL("a"))
}
