//go:build unit || e2e

// Package testutil builds request bodies for binding tests: start from a valid
// DTO and mutate single fields.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Mutation func(m map[string]any)

// DtoMap round-trips v through JSON so the result uses wire field names.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key, or removes it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

func Fields(kv map[string]any) Mutation {
	return func(m map[string]any) {
		for k, v := range kv {
			Field(k, v)(m)
		}
	}
}
