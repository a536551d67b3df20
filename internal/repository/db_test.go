package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaekwang-park/todolist-api/internal/config"
)

func TestRebind(t *testing.T) {
	query := `UPDATE items SET description = COALESCE(?, description) WHERE id = ? AND list_id = ?`

	tests := []struct {
		driver string
		want   string
	}{
		{config.DriverSQLite, query},
		{config.DriverSQLite3, query},
		{config.DriverPostgres, `UPDATE items SET description = COALESCE($1, description) WHERE id = $2 AND list_id = $3`},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := &DB{driver: tt.driver}
			assert.Equal(t, tt.want, db.rebind(query))
		})
	}
}

func TestTable_String(t *testing.T) {
	assert.Equal(t, "lists", TableLists.String())
	assert.Equal(t, "items", TableItems.String())
	assert.Equal(t, "Table(0)", Table(0).String())
}
