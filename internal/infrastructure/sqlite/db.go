package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Querier abstração sobre *sqlx.DB e *sqlx.Tx para que os repositórios sirvam
// tanto fora quanto dentro de uma transação.
type Querier = sqlx.ExtContext

// Open abre (ou cria) o arquivo do banco e garante a existência das tabelas.
// Idempotente: seguro de executar a cada start do processo. Falha aqui impede
// o servidor HTTP de subir.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("criar diretório do banco: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", url.PathEscape(path))
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir banco: %w", err)
	}

	// SQLite aceita um escritor por vez; uma única conexão evita SQLITE_BUSY
	// entre requisições concorrentes e deixa o lock do engine resolver a ordem.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping banco: %w", err)
	}

	if err := bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// bootstrap executa o lote de CREATE TABLE IF NOT EXISTS do esquema declarativo.
func bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, table := range Schema {
		if _, err := db.ExecContext(ctx, table.CreateDDL()); err != nil {
			return fmt.Errorf("criar tabela %s: %w", table.Name, err)
		}
	}
	return nil
}
