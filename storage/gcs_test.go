package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCSResolveURLRejectsForeignHandles(t *testing.T) {
	s := &GCSStorage{bucket: "kyc-bucket"}

	handles := []string{
		"",
		"uploads/kyc/1/pancard/pan.jpg",
		"gs://other-bucket/uploads/kyc/1/pancard/pan.jpg",
		"/tmp/uploads/1_pancard_abc.jpg",
	}
	for _, handle := range handles {
		url, ok := s.ResolveURL(handle)
		assert.False(t, ok, "handle %q should not resolve", handle)
		assert.Empty(t, url)
	}
}
