//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// JSONMap renders a request DTO as a generic map so tests can send payloads
// the typed struct cannot express (missing fields, wrong types).
func JSONMap(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}
