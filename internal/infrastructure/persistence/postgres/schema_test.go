package postgres

import (
	"bufio"
	"io/fs"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/rafabene/usermanager-backend/internal/services"
)

var (
	varcharType   = regexp.MustCompile(`(?i)^varchar\((\d+)\)$`)
	varcharColumn = regexp.MustCompile(`(?i)^\s*([a-z_]+)\s+VARCHAR\((\d+)\)`)
	maxRule       = regexp.MustCompile(`(?:^|,)max=(\d+)`)
)

func parseModel(t *testing.T, model any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

// modelVarchars retorna coluna -> tamanho declarado no model
func modelVarchars(t *testing.T, s *schema.Schema) map[string]int {
	t.Helper()
	sizes := map[string]int{}
	for _, field := range s.Fields {
		m := varcharType.FindStringSubmatch(field.TagSettings["TYPE"])
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		sizes[field.DBName] = n
	}
	return sizes
}

// migrationVarchars retorna coluna -> tamanho declarado nas migrações SQL
func migrationVarchars(t *testing.T) map[string]int {
	t.Helper()
	sizes := map[string]int{}
	entries, err := fs.ReadDir(embedMigrations, "migrations")
	require.NoError(t, err)
	for _, entry := range entries {
		data, err := fs.ReadFile(embedMigrations, "migrations/"+entry.Name())
		require.NoError(t, err)

		scanner := bufio.NewScanner(strings.NewReader(string(data)))
		for scanner.Scan() {
			m := varcharColumn.FindStringSubmatch(scanner.Text())
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[2])
			require.NoError(t, err)
			sizes[strings.ToLower(m[1])] = n
		}
	}
	return sizes
}

func TestSchema_ModelsMatchMigrations(t *testing.T) {
	fromSQL := migrationVarchars(t)

	for _, model := range AllModels() {
		s := parseModel(t, model)
		for column, size := range modelVarchars(t, s) {
			assert.Equal(t, size, fromSQL[column], "%s.%s", s.Table, column)
		}
	}
}

func TestSchema_ValidationLimitsFitColumns(t *testing.T) {
	cases := []struct {
		input any
		model any
	}{
		{services.CreateUserInput{}, &UserModel{}},
		{services.CreateProfileInput{}, &ProfileModel{}},
	}

	for _, tc := range cases {
		s := parseModel(t, tc.model)
		sizes := modelVarchars(t, s)

		typ := reflect.TypeOf(tc.input)
		for i := 0; i < typ.NumField(); i++ {
			sf := typ.Field(i)
			m := maxRule.FindStringSubmatch(sf.Tag.Get("validate"))
			if m == nil {
				continue
			}
			field, ok := s.FieldsByName[sf.Name]
			if !ok {
				continue
			}
			limit, err := strconv.Atoi(m[1])
			require.NoError(t, err)

			column, ok := sizes[field.DBName]
			require.True(t, ok, "%s.%s has no varchar size", s.Table, field.DBName)
			assert.LessOrEqual(t, limit, column,
				"%s accepts %d chars but %s.%s holds %d", sf.Name, limit, s.Table, field.DBName, column)
		}
	}
}
