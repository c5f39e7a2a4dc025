// database/bootstrap.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alqualis/entities"
	"alqualis/pkg/faults"
)

// Tables lists every table the schema creates, in creation order.
var Tables = []string{
	"produtor",
	"comunidade",
	"municipio",
	"cooperativa",
	"variedade",
	"plantacao",
	"cooperativa_produtor",
	"face_exposicao",
	"face_exposicao_plantacao",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS produtor (
    id_produtor      INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_produtor    TEXT    NOT NULL,
    cpf_produtor     TEXT    UNIQUE,
    codigo_produtor  TEXT    UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS comunidade (
    id_comunidade    INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_comunidade  TEXT    NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS municipio (
    id_municipio     INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_municipio   TEXT    NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS cooperativa (
    id_cooperativa   INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_cooperativa TEXT    NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS variedade (
    id_variedade     INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_variedade   TEXT    NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS plantacao (
    id_plantacao     INTEGER PRIMARY KEY AUTOINCREMENT,
    id_produtor      INTEGER NOT NULL,
    id_variedade     INTEGER NOT NULL,
    id_comunidade    INTEGER NOT NULL,
    id_municipio     INTEGER NOT NULL,
    nome_plantacao   TEXT    NOT NULL,
    latitude         TEXT,
    longitude        TEXT,
    altitude_media   TEXT,
    nome_talhao      TEXT,
    meses_colheita   TEXT,   -- JSON array of month names
    FOREIGN KEY (id_produtor)   REFERENCES produtor(id_produtor),
    FOREIGN KEY (id_variedade)  REFERENCES variedade(id_variedade),
    FOREIGN KEY (id_comunidade) REFERENCES comunidade(id_comunidade),
    FOREIGN KEY (id_municipio)  REFERENCES municipio(id_municipio)
)`,
	`CREATE INDEX IF NOT EXISTS idx_plantacao_produtor   ON plantacao(id_produtor)`,
	`CREATE INDEX IF NOT EXISTS idx_plantacao_variedade  ON plantacao(id_variedade)`,
	`CREATE INDEX IF NOT EXISTS idx_plantacao_comunidade ON plantacao(id_comunidade)`,
	`CREATE INDEX IF NOT EXISTS idx_plantacao_municipio  ON plantacao(id_municipio)`,
	`CREATE TABLE IF NOT EXISTS cooperativa_produtor (
    id_cooperativa_produtor INTEGER PRIMARY KEY AUTOINCREMENT,
    id_cooperativa          INTEGER NOT NULL,
    id_produtor             INTEGER NOT NULL,
    FOREIGN KEY (id_cooperativa) REFERENCES cooperativa(id_cooperativa),
    FOREIGN KEY (id_produtor)    REFERENCES produtor(id_produtor)
)`,
	`CREATE INDEX IF NOT EXISTS idx_cp_cooperativa ON cooperativa_produtor(id_cooperativa)`,
	`CREATE INDEX IF NOT EXISTS idx_cp_produtor    ON cooperativa_produtor(id_produtor)`,
	`CREATE TABLE IF NOT EXISTS face_exposicao (
    id_face_exposicao   INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_face_exposicao TEXT    NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS face_exposicao_plantacao (
    id_face_exposicao_plantacao INTEGER PRIMARY KEY AUTOINCREMENT,
    id_face_exposicao           INTEGER NOT NULL,
    id_plantacao                INTEGER NOT NULL,
    FOREIGN KEY (id_face_exposicao) REFERENCES face_exposicao(id_face_exposicao),
    FOREIGN KEY (id_plantacao)      REFERENCES plantacao(id_plantacao)
)`,
	`CREATE INDEX IF NOT EXISTS idx_fep_face      ON face_exposicao_plantacao(id_face_exposicao)`,
	`CREATE INDEX IF NOT EXISTS idx_fep_plantacao ON face_exposicao_plantacao(id_plantacao)`,
}

// SeedFaces are inserted when the schema is created on an empty store and
// seeding was requested.
var SeedFaces = []string{"NORTE", "SUL", "LESTE", "OESTE"}

type Store struct {
	DB   *gorm.DB
	path string
}

// Open opens (creating on demand) the store file at path. Foreign keys are
// enforced on every connection through the DSN.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, faults.Wrap(faults.StorageIOError, "open sqlite", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, faults.Wrap(faults.StorageIOError, "open sqlite", err)
	}
	// single writer; also keeps BEGIN..COMMIT on one connection
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, faults.Wrap(faults.StorageIOError, "open sqlite", err)
	}
	return &Store{DB: db, path: path}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *Store) Path() string { return s.path }

// InitializeSchema creates every table and index that does not exist yet.
// Running it on an initialized store changes nothing. When seed is true and
// the store was empty, the default exposure faces are inserted.
func (s *Store) InitializeSchema(ctx context.Context, seed bool) error {
	db := s.DB.WithContext(ctx)

	var existing int64
	if err := db.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='produtor'`).Scan(&existing).Error; err != nil {
		return faults.Wrap(faults.StorageIOError, "check schema", err)
	}
	fresh := existing == 0

	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return faults.Wrap(faults.StorageIOError, "enable foreign keys", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range schema {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("%s: %w", firstLine(stmt), err)
			}
		}
		if fresh && seed {
			for _, name := range SeedFaces {
				if err := tx.Create(&entities.ExposureFace{Name: name}).Error; err != nil {
					return fmt.Errorf("seed face %s: %w", name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return faults.Wrap(faults.StorageIOError, "initialize schema", err)
	}
	log.Printf("[db] schema ready at %s (fresh=%v seed=%v)", s.path, fresh, fresh && seed)
	return nil
}

// MissingTables returns the schema tables absent from the store.
func MissingTables(ctx context.Context, db *gorm.DB) ([]string, error) {
	var names []string
	if err := db.WithContext(ctx).Raw(`SELECT name FROM sqlite_master WHERE type='table'`).Scan(&names).Error; err != nil {
		return nil, err
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	var missing []string
	for _, t := range Tables {
		if !have[t] {
			missing = append(missing, t)
		}
	}
	return missing, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Destroy closes the store and deletes its file.
func (s *Store) Destroy() error {
	if err := s.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return faults.Wrap(faults.StorageIOError, "close store", err)
	}
	return Destroy(s.path)
}

// Destroy deletes the store file at path together with its journal files.
// A missing file is not an error.
func Destroy(path string) error {
	for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return faults.Wrap(faults.StorageIOError, "remove "+p, err)
		}
	}
	log.Printf("[db] store %s removed", path)
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i > 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}
