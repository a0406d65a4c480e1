package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIndexSQL(t *testing.T) {
	tests := []struct {
		name string
		spec IndexSpec
		want string
	}{
		{
			name: "unique composite",
			spec: IndexSpec{Name: "cd_cliente_unique", Table: "clientes", Columns: []string{"cd", "cliente"}, Unique: true},
			want: `CREATE UNIQUE INDEX IF NOT EXISTS "cd_cliente_unique" ON "clientes" ("cd", "cliente")`,
		},
		{
			name: "secondary",
			spec: IndexSpec{Name: "idx_legacy_barrio", Table: "clientes_legacy", Columns: []string{"barrio"}},
			want: `CREATE INDEX IF NOT EXISTS "idx_legacy_barrio" ON "clientes_legacy" ("barrio")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, createIndexSQL(tt.spec))
		})
	}
}

func TestDropIndexSQL(t *testing.T) {
	assert.Equal(t, `DROP INDEX IF EXISTS "codigo_unique"`, dropIndexSQL(IndexSpec{Name: "codigo_unique"}))
}

func TestEnsureIndex_NoColumns(t *testing.T) {
	err := EnsureIndex(context.Background(), nil, IndexSpec{Name: "empty", Table: "clientes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no columns")
}
