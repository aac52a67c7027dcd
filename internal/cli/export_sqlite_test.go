package cli_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/cmn/internal/cli"
	"github.com/calvinalkan/cmn/pkg/cmn"
)

func openExport(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func Test_Export_Sqlite_Writes_Tables_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--algorithm", "blake2b", "--hash-len", "16", "export", "--format", "sqlite", "-o", "cmn.db")
	assert.Empty(t, stdout)

	db := openExport(t, filepath.Join(c.Dir, "cmn.db"))

	var algorithm string

	var cost uint32

	var hashLen int

	require.NoError(t, db.QueryRow(`SELECT algorithm, cost, hash_len FROM hash`).Scan(&algorithm, &cost, &hashLen))
	assert.Equal(t, "Blake2b", algorithm)
	assert.Equal(t, uint32(cmn.DefaultCost), cost)
	assert.Equal(t, 16, hashLen)

	var constants, valid int

	require.NoError(t, db.QueryRow(`SELECT COUNT(*), SUM(valid) FROM constants`).Scan(&constants, &valid))
	assert.Equal(t, len(cmn.CatalogNames()), constants)
	assert.Equal(t, constants, valid)

	var first, value string

	var digest []byte

	require.NoError(t, db.QueryRow(`SELECT name, value, digest FROM constants WHERE position = 3`).Scan(&first, &value, &digest))
	assert.Equal(t, "pi", first)
	assert.Equal(t, "3.141592653589793", value)
	assert.Len(t, digest, 16)

	var words int

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&words))
	assert.Equal(t, 4096, words)

	var version int

	require.NoError(t, db.QueryRow(`PRAGMA user_version`).Scan(&version))
	assert.Equal(t, 1, version)
}

func Test_Export_Sqlite_Replaces_Existing_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("data.json", `{"constants": [{"name": "k", "type": "string", "value": "v"}], "words": ["x", "y"]}`)
	c.WriteFile("cmn.db", "not a database")

	c.MustRun("--data", "data.json", "export", "--format", "sqlite", "-o", "cmn.db")

	db := openExport(t, filepath.Join(c.Dir, "cmn.db"))

	var words int

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&words))
	assert.Equal(t, 2, words)

	entries, err := os.ReadDir(c.Dir)
	require.NoError(t, err)

	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file left behind")
	}
}

func Test_Export_Sqlite_Requires_Output_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("export", "--format", "sqlite")

	cli.AssertContains(t, stderr, "file path is required: sqlite export writes a file")
}
