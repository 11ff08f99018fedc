package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later
// config overrides the same field of an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-env"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-json"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Storage.DB.DSN)
}

// TestBuild_ZeroValueDoesNotOverride verifies that an empty field in a later
// config keeps the earlier value.
func TestBuild_ZeroValueDoesNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{RequestTimeout: time.Second}},
		&StructuredConfig{Server: Server{HTTPAddress: ":9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "file:test.db", "-db-driver", "sqlite3"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "file:test.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.DB.Driver)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.DB.DSN = "json-dsn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-dsn", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── LoadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_AppliesDefaults(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/linkup")

	cfg, err := LoadStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultMediaBaseURL, cfg.Media.BaseURL)
	assert.Equal(t, DefaultHealthCheckInterval, cfg.Workers.HealthCheckInterval)
}

func TestLoadStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/linkup")

	cfg, err := LoadStructuredConfig([]string{"-token-sign-key", "flag-secret", "-a", "localhost:9999"})
	require.NoError(t, err)

	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://env/linkup", cfg.Storage.DB.DSN)
}

func TestLoadStructuredConfig_MissingSignKeyFails(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/linkup")

	_, err := LoadStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestLoadStructuredConfig_MissingDSNFails(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	_, err := LoadStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Contains(t, cfg.Adapter.TokenFile, DefaultTokenFileName)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://api.example.com")
	t.Setenv("ADAPTER_TOKEN_FILE", "/tmp/tok")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/tok", cfg.Adapter.TokenFile)
}
