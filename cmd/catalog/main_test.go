package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/catalog/internal/config"
)

const seedYAML = `
product_types:
  - {name: Shirt, slug: shirt}
attributes:
  - name: Color
    slug: color
    values:
      - {name: Red, slug: red}
      - {name: Blue, slug: blue}
links:
  product:
    - {scope: shirt, attribute: color}
products:
  - {name: Tee, slug: tee, product_type: shirt}
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_SeedAndAssociate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("DB_URL", "sqlite:///"+filepath.Join(dir, "cli.db"))
	t.Setenv("LOG_LEVEL", "ERROR")

	_, err := run(t, "", "migrate")
	require.NoError(t, err)

	_, err = run(t, seedYAML, "seed", "--file", "-")
	require.NoError(t, err)

	out, err := run(t, "", "associate", "--kind", "product", "--entity", "1", "--attribute", "1", "--values", "2, 1")
	require.NoError(t, err)

	var result struct {
		Kind     string  `json:"kind"`
		EntityID int64   `json:"entity_id"`
		ValueIDs []int64 `json:"value_ids"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "product", result.Kind)
	assert.Equal(t, int64(1), result.EntityID)
	assert.Equal(t, []int64{2, 1}, result.ValueIDs)
}

func TestCLI_AssociateRejectsUnknownKind(t *testing.T) {
	_, err := run(t, "", "associate", "--kind", "warehouse", "--entity", "1", "--attribute", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported entity")
}

func TestCLI_SeedRequiresFile(t *testing.T) {
	_, err := run(t, "", "seed")
	require.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog version dev")
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		in      string
		want    []int64
		wantErr bool
	}{
		{"", []int64{}, false},
		{"3", []int64{3}, false},
		{"3, 1,2", []int64{3, 1, 2}, false},
		{"3,,1", []int64{3, 1}, false},
		{"3,x", nil, true},
	}

	for _, tt := range tests {
		got, err := parseIDs(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestApplyServeOverrides(t *testing.T) {
	cfg := applyServeOverrides(config.NewAppConfig(), "127.0.0.1", 9090)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())

	cfg = applyServeOverrides(config.NewAppConfig(), "", 0)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
