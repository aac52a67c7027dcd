package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/calvinalkan/cmn/pkg/cmn"
)

const sqliteSchemaVersion = 1

// writeSQLite builds the database in a temp file next to path and renames it
// into place, so readers never see a half-written database.
func writeSQLite(ctx context.Context, path string, common *cmn.Common) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp db: %w", err)
	}

	tmpPath := tmp.Name()
	_ = tmp.Close()

	renamed := false

	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	db, err := sql.Open("sqlite3", tmpPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	err = fillSQLite(ctx, db, common)

	closeErr := db.Close()
	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("close sqlite: %w", closeErr)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	renamed = true

	return nil
}

func fillSQLite(ctx context.Context, db *sql.DB, common *cmn.Common) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export txn: %w", err)
	}

	committed := false

	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	err = createExportSchema(ctx, tx)
	if err != nil {
		return err
	}

	hc := common.HashConfig()

	_, err = tx.ExecContext(ctx, `INSERT INTO hash (algorithm, cost, hash_len) VALUES (?, ?, ?)`,
		hc.Algorithm.String(), hc.Cost, hc.HashLen)
	if err != nil {
		return fmt.Errorf("insert hash row: %w", err)
	}

	insertConstant, err := tx.PrepareContext(ctx, `
		INSERT INTO constants (position, name, type, value, digest, valid)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare constant insert: %w", err)
	}

	defer func() { _ = insertConstant.Close() }()

	for i, e := range common.Constants().All() {
		_, err = insertConstant.ExecContext(ctx,
			i,
			e.Name(),
			e.Value().Kind().String(),
			e.Value().String(),
			e.Digest(),
			e.IsValid(),
		)
		if err != nil {
			return fmt.Errorf("insert constant %s: %w", e.Name(), err)
		}
	}

	insertWord, err := tx.PrepareContext(ctx, `INSERT INTO words (word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("prepare word insert: %w", err)
	}

	defer func() { _ = insertWord.Close() }()

	for _, w := range common.Words().All() {
		_, err = insertWord.ExecContext(ctx, w)
		if err != nil {
			return fmt.Errorf("insert word %q: %w", w, err)
		}
	}

	_, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", sqliteSchemaVersion))
	if err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit export txn: %w", err)
	}

	committed = true

	return nil
}

func createExportSchema(ctx context.Context, tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE hash (
			algorithm TEXT NOT NULL,
			cost INTEGER NOT NULL,
			hash_len INTEGER NOT NULL
		)`,
		`CREATE TABLE constants (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			value TEXT NOT NULL,
			digest BLOB,
			valid INTEGER NOT NULL
		)`,
		`CREATE TABLE words (
			word TEXT PRIMARY KEY
		) WITHOUT ROWID`,
	}

	for _, stmt := range statements {
		_, err := tx.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}
