package fleetfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mughalk/csc301-a2/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFleetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid file preserves order and duplicates", func(t *testing.T) {
		path := writeFleetFile(t, `
services:
  - name: UserService
    addresses: ["127.0.0.1:14001"]
  - name: ProductService
    addresses: ["127.0.0.1:15001", "127.0.0.1:15002", "127.0.0.1:15001"]
  - name: OrderService
    addresses: ["127.0.0.1:16001"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		require.Len(t, cfg.Registrations, 3)
		assert.Equal(t, domain.Registration{
			Name:      domain.ServiceUser,
			Addresses: []string{"127.0.0.1:14001"},
		}, cfg.Registrations[0])
		assert.Equal(t, []string{"127.0.0.1:15001", "127.0.0.1:15002", "127.0.0.1:15001"},
			cfg.Registrations[1].Addresses)
		assert.Equal(t, []string{"127.0.0.1:16001"}, cfg.Addresses(domain.ServiceOrder))
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFleetFile(t, "services: [not: closed")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse fleet config "+path)
	})
	t.Run("invalid registration", func(t *testing.T) {
		path := writeFleetFile(t, `
services:
  - name: UserService
    addresses: ["no-port-here"]
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fleet config "+path)
		assert.Contains(t, err.Error(), `registration[0]: address must be host:port, got "no-port-here"`)
	})
	t.Run("empty address list", func(t *testing.T) {
		path := writeFleetFile(t, `
services:
  - name: UserService
    addresses: []
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration[0]: at least one address is required")
	})
	t.Run("relative path is resolved", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fleet.yaml"), []byte(`
services:
  - name: OrderService
    addresses: ["127.0.0.1:16001"]
`), 0o600))
		chdir(t, dir)

		cfg, err := Load("fleet.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"127.0.0.1:16001"}, cfg.Addresses(domain.ServiceOrder))
	})
}

// chdir changes the working directory for the test, restoring it on cleanup.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
