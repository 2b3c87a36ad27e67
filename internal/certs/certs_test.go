package certs

import (
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_GetOrCreateCertificate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	m := NewFileManager(dir)

	first, err := m.GetOrCreateCertificate()
	require.NoError(t, err)
	require.NotEmpty(t, first.Certificate)

	assert.FileExists(t, filepath.Join(dir, CertFileName))
	assert.FileExists(t, filepath.Join(dir, KeyFileName))
	assert.Equal(t, filepath.Join(dir, CertFileName), m.CertFile())

	info, err := os.Stat(filepath.Join(dir, KeyFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	t.Run("reuses stored pair", func(t *testing.T) {
		second, err := m.GetOrCreateCertificate()
		require.NoError(t, err)
		assert.Equal(t, first.Certificate[0], second.Certificate[0])
	})

	t.Run("regenerates expired pair", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(2 * DefaultValidity) }
		defer func() { m.now = time.Now }()

		renewed, err := m.GetOrCreateCertificate()
		require.NoError(t, err)
		assert.NotEqual(t, first.Certificate[0], renewed.Certificate[0])
	})

	t.Run("regenerates unreadable pair", func(t *testing.T) {
		require.NoError(t, os.WriteFile(m.CertFile(), []byte("garbage"), 0600))

		cert, err := m.GetOrCreateCertificate()
		require.NoError(t, err)
		assert.NotEmpty(t, cert.Certificate)
	})
}

func TestFileManager_CertificateProperties(t *testing.T) {
	m := NewFileManager(t.TempDir())
	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)

	assert.Equal(t, "localhost", leaf.Subject.CommonName)
	assert.Contains(t, leaf.DNSNames, "localhost")
	assert.Contains(t, leaf.ExtKeyUsage, x509.ExtKeyUsageServerAuth)
	assert.NoError(t, leaf.VerifyHostname("127.0.0.1"))
	assert.WithinDuration(t, time.Now().Add(DefaultValidity), leaf.NotAfter, time.Hour)
}

func TestVerify(t *testing.T) {
	m := NewFileManager(t.TempDir())
	cert, err := m.GetOrCreateCertificate()
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr string
	}{
		{name: "valid", now: time.Now()},
		{name: "not yet valid", now: time.Now().Add(-time.Hour), wantErr: "not yet valid"},
		{name: "expired", now: time.Now().Add(DefaultValidity + time.Hour), wantErr: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verify(cert, tt.now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadCertPool(t *testing.T) {
	m := NewFileManager(t.TempDir())
	_, err := m.GetOrCreateCertificate()
	require.NoError(t, err)

	pool, err := LoadCertPool(m.CertFile())
	require.NoError(t, err)
	assert.NotNil(t, pool)

	bad := filepath.Join(t.TempDir(), "empty.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not pem"), 0600))
	_, err = LoadCertPool(bad)
	assert.ErrorContains(t, err, "no certificates")

	_, err = LoadCertPool(filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)
}
