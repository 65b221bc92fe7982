// Package db はcampeonatoサービスのクエリ実行層を提供する。
// database/sqlの*sql.DBと*sql.Txのどちらでも同じクエリを実行できるよう、
// DBTXインターフェースを介してSQLを発行する。
package db

import (
	"context"
	"database/sql"
)

// DBTX はクエリ実行に必要なdatabase/sqlの操作を表す。
// *sql.DBと*sql.Txの両方が満たす。
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries はテーブルごとのクエリメソッドをまとめた実行オブジェクト。
type Queries struct {
	db DBTX
}

// New は新しいクエリ実行オブジェクトを生成する。
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx はトランザクションにバインドされたクエリ実行オブジェクトを返す。
// 存在確認と書き込みを同一トランザクションで行う場合に使用する。
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}
