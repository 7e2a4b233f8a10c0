// Package storage provides the persistent key-value store backing the V-Nexus
// application. Every entity collection (users, posts, friends, notifications,
// conversations), the current-session marker, and the settings record are each
// serialized as a single JSON document under a distinct string key, mirroring a
// flat browser-storage layout. The store is an embedded single-file sqlite
// database holding one `kv_store` table, so the application needs no external
// database server.
//
// Concurrency model: mutators perform a read-modify-write cycle against the
// store. The source of truth for serializing those cycles is the store-wide
// mutex exposed via Lock/Unlock; a mutator holds it from first read to final
// write, which is the explicit equivalent of a single-threaded event loop.
package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	// `golang-migrate` manages the schema of the kv_store table itself.
	// The payload documents carry no schema version: an absent key simply
	// loads as the zero value of its collection.
	"github.com/golang-migrate/migrate/v4"
	// The sqlite database driver for golang-migrate works on a database/sql
	// handle, which we already hold.
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	// The iofs source driver reads migrations from an embedded filesystem,
	// so the binary carries its own schema.
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// Pure-Go sqlite driver, registered under the name "sqlite". Imported for
	// its side effect of registering with database/sql.
	_ "modernc.org/sqlite"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the process-wide persistent key-value store.
type Store struct {
	db *sql.DB
	// mu serializes read-modify-write cycles across all mutators. It is held
	// by callers (via Lock/Unlock) around whole cycles, not by Get/Set
	// themselves, so a mutator can read, mutate in memory, and write back as
	// one atomic step from every other mutator's point of view.
	mu sync.Mutex
}

// Open opens (creating if necessary) the store file at the configured path and
// brings its schema up to date.
func Open(cfg *config.StorageConfig) (*Store, error) {
	// The busy timeout makes concurrent readers wait briefly instead of
	// failing when a write is in flight.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperror.NewStorageError(fmt.Sprintf("failed to open store at %s", cfg.Path), err)
	}

	// sqlite is a single-writer engine; a single connection avoids lock
	// contention between the pool's connections.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Verify the file is actually usable before handing the store out.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperror.NewStorageError(fmt.Sprintf("failed to ping store at %s", cfg.Path), err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// runMigrations applies any pending schema migrations from the embedded
// migrations directory. Migration files are named in golang-migrate's
// {version}_{description}.{up|down}.sql format.
func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return apperror.NewMigrationError("failed to load embedded migrations", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return apperror.NewMigrationError("failed to create sqlite migration driver", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}

	// `migrate.ErrNoChange` is returned when the schema is already current,
	// which is not an actual error.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lock takes the store-wide mutator lock. Hold it for the whole
// read-modify-write cycle of a mutation.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store-wide mutator lock.
func (s *Store) Unlock() { s.mu.Unlock() }

// getRaw reads the raw JSON document stored under key. The second return
// value reports whether the key was present.
func (s *Store) getRaw(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperror.NewStorageError(fmt.Sprintf("failed to read key %q", key), err)
	}
	return value, true, nil
}

// setRaw writes the raw JSON document under key, replacing any previous value.
// Writes are synchronous: when setRaw returns, the document is durable.
func (s *Store) setRaw(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to write key %q", key), err)
	}
	return nil
}

// Remove deletes the document stored under key. Removing an absent key is a
// no-op, matching remove semantics of a plain key-value surface.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to remove key %q", key), err)
	}
	return nil
}

// Has reports whether a document exists under key.
func (s *Store) Has(key string) (bool, error) {
	_, ok, err := s.getRaw(key)
	return ok, err
}

// Get reads and decodes the document stored under key into a value of type T.
// An absent key yields the zero value of T (an empty collection, an empty
// record), which is the whole of the store's "schema defaulting": there is no
// migration of older payload shapes.
//
// Get and Set are package-level generic functions rather than methods because
// Go methods cannot introduce type parameters.
func Get[T any](s *Store, key string) (T, error) {
	var value T
	raw, ok, err := s.getRaw(key)
	if err != nil || !ok {
		return value, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, apperror.NewStorageError(fmt.Sprintf("failed to decode key %q", key), err)
	}
	return value, nil
}

// GetInto decodes the document stored under key over an already-populated
// value. Fields absent from the stored document keep whatever the caller put
// in them, which gives records like settings their per-field defaulting. An
// absent key leaves the value untouched.
func GetInto[T any](s *Store, key string, value *T) error {
	raw, ok, err := s.getRaw(key)
	if err != nil || !ok {
		return err
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to decode key %q", key), err)
	}
	return nil
}

// Set encodes value as JSON and writes it under key (last-write-wins).
func Set[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to encode key %q", key), err)
	}
	return s.setRaw(key, raw)
}
