package littlesearch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver   string
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(driver, user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		Driver:   driver,
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", c.Addr, c.Port, c.User, c.Password, c.DB)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(driver, dsn string) (*sqlx.DB, error) {
	if driver != DriverMySQL && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl reads the corpus from the documents and noise_words tables.
// The manifest order is the documents insertion order.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

var schemas = map[string][]string{
	DriverMySQL: {
		`create table if not exists documents (
			id bigint unsigned not null auto_increment primary key,
			name varchar(255) not null unique,
			body longtext not null
		)`,
		`create table if not exists noise_words (
			word varchar(255) not null primary key
		)`,
	},
	DriverPostgres: {
		`create table if not exists documents (
			id bigserial primary key,
			name varchar(255) not null unique,
			body text not null
		)`,
		`create table if not exists noise_words (
			word varchar(255) not null primary key
		)`,
	},
}

func (s *StorageRdbImpl) Migrate(ctx context.Context) error {
	for _, stmt := range schemas[s.DB.DriverName()] {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageRdbImpl) GetManifest(ctx context.Context) ([]DocumentID, error) {
	var ids []DocumentID
	if err := s.DB.SelectContext(ctx, &ids, `select name from documents order by id`); err != nil {
		if isMissingTable(err) {
			return nil, fmt.Errorf("%w: %v", ErrManifestNotFound, err)
		}
		return nil, err
	}
	return ids, nil
}

func (s *StorageRdbImpl) GetNoiseWords(ctx context.Context) ([]string, error) {
	var words []string
	if err := s.DB.SelectContext(ctx, &words, `select word from noise_words`); err != nil {
		if isMissingTable(err) {
			return nil, fmt.Errorf("%w: %v", ErrNoiseWordsNotFound, err)
		}
		return nil, err
	}
	return words, nil
}

func (s *StorageRdbImpl) GetDocument(ctx context.Context, id DocumentID) (Document, error) {
	var doc Document
	query := s.DB.Rebind(`select name, body from documents where name = ?`)
	if err := s.DB.GetContext(ctx, &doc, query, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMissingTable(err) {
			return Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
		}
		return Document{}, err
	}
	return doc, nil
}

// AddDocument appends a document to the end of the manifest.
func (s *StorageRdbImpl) AddDocument(ctx context.Context, doc Document) error {
	_, err := s.DB.NamedExecContext(ctx, `insert into documents (name, body) values (:name, :body)`,
		map[string]interface{}{
			"name": string(doc.ID),
			"body": doc.Body,
		})
	return err
}

func (s *StorageRdbImpl) AddNoiseWords(ctx context.Context, words []string) error {
	for _, w := range words {
		_, err := s.DB.NamedExecContext(ctx, `insert into noise_words (word) values (:word)`,
			map[string]interface{}{
				"word": w,
			})
		if err != nil {
			if isDuplicateKey(err) {
				continue
			}
			return err
		}
	}
	return nil
}

// 1146: ER_NO_SUCH_TABLE, 42P01: undefined_table
func isMissingTable(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1146
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	return false
}

// 1062: ER_DUP_ENTRY, 23505: unique_violation
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
