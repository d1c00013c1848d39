package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = newTestFlagSet()
	b.args = args
	return b
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Server:  Server{HTTPAddress: "localhost:44"},
	}
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newTestBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHashSuffix, cfg.App.HashSuffix)
}

func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}, Server: Server{HTTPAddress: "127.0.0.1:8080"}},
		&StructuredConfig{App: App{HashSuffix: "Other"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "Other", cfg.App.HashSuffix)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative pool", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.MaxOpenConns = -1 }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "later")

	b := newTestBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_InvalidFlag(t *testing.T) {
	b := newTestBuilder("-unknown").withFlags()
	assert.Error(t, b.err)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, validConfig())

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestFullChain_EnvFlagsJSON(t *testing.T) {
	p := writeTempFile(t, `{"app": {"version": "from-json"}}`)

	t.Setenv("STORAGE_DB_DATABASE_URI", "file:env.db")
	t.Setenv("SERVER_ADDRESS", "localhost:44")
	t.Setenv("APP_VERSION", "from-env")

	cfg, err := newTestBuilder("-d", "file:flags.db", "-c", p).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "file:flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:44", cfg.Server.HTTPAddress)
	assert.Equal(t, "from-json", cfg.App.Version)
}

func TestGetClientConfig(t *testing.T) {
	t.Run("env only", func(t *testing.T) {
		t.Setenv("ADAPTER_ADDRESS", "localhost:44")

		cfg, err := GetClientConfig([]string{"users"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:44", cfg.Adapter.HTTPAddress)
		assert.Equal(t, defaultClientTimeout, cfg.Adapter.RequestTimeout)
		assert.Equal(t, []string{"users"}, cfg.Args)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("ADAPTER_ADDRESS", "localhost:44")
		t.Setenv("ADAPTER_REQUEST_TIMEOUT", "1s")

		cfg, err := GetClientConfig([]string{"-a", "127.0.0.1:8080", "-request-timeout", "3s", "user", "alice"})
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, []string{"user", "alice"}, cfg.Args)
	})

	t.Run("no address", func(t *testing.T) {
		_, err := GetClientConfig([]string{"users"})
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
