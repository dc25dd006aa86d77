// Package codecache persists code descriptors across process runs as a
// pluggable database/sql backed store selectable by DSN scheme.
//
// A short driver alias maps to the registered database/sql driver name,
// and errors are wrapped with github.com/pkg/errors, but the surface narrows to the one table a
// code-object cache needs instead of a general query/exec/transaction
// façade.
package codecache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"pyrtcore/internal/codereg"
)

// driverFor maps a DSN scheme (sqlite, postgres, mysql, sqlserver) to the
// database/sql driver name it was registered under.
var driverFor = map[string]string{
	"sqlite":    "sqlite",
	"sqlite3":   "sqlite",
	"postgres":  "postgres",
	"postgresql": "postgres",
	"mysql":     "mysql",
	"sqlserver": "sqlserver",
	"mssql":     "sqlserver",
}

// Cache is a code-descriptor store backed by a database/sql connection.
type Cache struct {
	db     *sql.DB
	scheme string
}

// Open connects to dsn under the database kind named by scheme (one of the
// keys of driverFor) and ensures the backing table exists.
func Open(scheme, dsn string) (*Cache, error) {
	driver, ok := driverFor[scheme]
	if !ok {
		return nil, errors.Errorf("codecache: unsupported database kind %q", scheme)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "codecache: open")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "codecache: ping")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	c := &Cache{db: db, scheme: scheme}
	if err := c.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) ensureSchema(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS code_objects (
		id INTEGER PRIMARY KEY,
		kind INTEGER NOT NULL,
		n_args INTEGER NOT NULL,
		n_locals INTEGER NOT NULL,
		n_stack INTEGER NOT NULL,
		is_generator INTEGER NOT NULL,
		payload BLOB,
		stored_at TIMESTAMP
	)`)
	if err != nil {
		return errors.Wrap(err, "codecache: create schema")
	}
	return nil
}

// Store persists a code descriptor's metadata, keyed by its registry ID,
// for reuse across a later process run with the same compiled unit. Only
// a bytecode-kind descriptor's payload is itself persisted: a native or
// inline-asm descriptor's Go function pointer has no meaning in another
// process, so those rows carry metadata only (NArgs/IsGenerator/Kind),
// still enough for a later run to recognize and re-register the same
// native symbol under a stable ID.
func (c *Cache) Store(ctx context.Context, desc *codereg.Descriptor) error {
	var payload []byte
	if desc.Kind == codereg.Bytecode {
		payload = desc.Code
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO code_objects (id, kind, n_args, n_locals, n_stack, is_generator, payload, stored_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		desc.ID, int(desc.Kind), desc.NArgs, desc.NLocals, desc.NStack, boolToInt(desc.IsGenerator), payload, time.Now())
	if err != nil {
		return errors.Wrapf(err, "codecache: store id %d", desc.ID)
	}
	fmt.Printf("codecache: stored code id %d (%s)\n", desc.ID, humanize.Bytes(uint64(len(payload))))
	return nil
}

// Load reconstructs a descriptor's metadata and, for a bytecode-kind
// entry, its payload, previously stored under id. A native/inline-asm
// descriptor's NativeFn must be re-supplied by the caller after loading,
// since it cannot be round-tripped through storage.
func (c *Cache) Load(ctx context.Context, id int) (*codereg.Descriptor, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT kind, n_args, n_locals, n_stack, is_generator, payload FROM code_objects WHERE id = ?`, id)

	var kind, nArgs, nLocals, nStack, isGen int
	var payload []byte
	if err := row.Scan(&kind, &nArgs, &nLocals, &nStack, &isGen, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.Errorf("codecache: no code object stored for id %d", id)
		}
		return nil, errors.Wrapf(err, "codecache: load id %d", id)
	}
	return &codereg.Descriptor{
		ID: id, Kind: codereg.Kind(kind), NArgs: nArgs, NLocals: nLocals, NStack: nStack,
		IsGenerator: isGen != 0, Code: payload, Len: len(payload),
	}, nil
}

// Close releases the underlying database connection.
func (c *Cache) Close() error { return c.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
