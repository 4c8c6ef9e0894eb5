package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/saifltr/library-management-system/internal/logger"
)

// DBStore keeps a collection in Postgres, one JSONB row per record. It still
// implements the whole-array Store contract: Save replaces every row of the
// collection, Load reads them back in insertion order.
type DBStore struct {
	conn       *pgx.Conn
	collection string
}

func NewDB(ctx context.Context, addr, collection string) (*DBStore, error) {
	conn, err := pgx.Connect(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &DBStore{conn: conn, collection: collection}, nil
}

func (dbs *DBStore) Load(dst any) error {
	rows, err := dbs.conn.Query(context.Background(),
		"SELECT doc FROM records WHERE collection = $1 ORDER BY pos", dbs.collection)
	if err != nil {
		return err
	}
	defer rows.Close()

	var docs []jsoniter.RawMessage
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (dbs *DBStore) Save(src any) error {
	log := logger.Get()
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	var docs []jsoniter.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}

	ctx := context.Background()
	tx, err := dbs.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, "DELETE FROM records WHERE collection = $1", dbs.collection); err != nil {
		return err
	}
	for i, doc := range docs {
		_, err := tx.Exec(ctx, "INSERT INTO records (collection, pos, doc) VALUES ($1, $2, $3)",
			dbs.collection, i, []byte(doc))
		if err != nil {
			log.Error().Err(err).Str("collection", dbs.collection).Msg("failed to insert record")
			return err
		}
	}
	return tx.Commit(ctx)
}

func (dbs *DBStore) Close(ctx context.Context) error {
	return dbs.conn.Close(ctx)
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations to apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations applied")
	return nil
}
