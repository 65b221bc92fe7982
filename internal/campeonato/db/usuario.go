package db

import "context"

const createUsuario = `
INSERT INTO usuarios (id, username, password)
VALUES (?, ?, ?)
`

// CreateUsuarioParams はCreateUsuarioのパラメータ。
type CreateUsuarioParams struct {
	ID       string
	Username string
	Password string
}

// CreateUsuario はログインユーザーを1件挿入する。
func (q *Queries) CreateUsuario(ctx context.Context, arg CreateUsuarioParams) error {
	_, err := q.db.ExecContext(ctx, createUsuario, arg.ID, arg.Username, arg.Password)
	return err
}

const getUsuarioByUsername = `
SELECT id, username, password FROM usuarios
WHERE username = ?
`

// GetUsuarioByUsername はユーザー名でログインユーザーを取得する。
// 該当行が無い場合はsql.ErrNoRowsを返す。
func (q *Queries) GetUsuarioByUsername(ctx context.Context, username string) (Usuario, error) {
	row := q.db.QueryRowContext(ctx, getUsuarioByUsername, username)
	var u Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const getUsuarioByCredentials = `
SELECT id, username, password FROM usuarios
WHERE username = ? AND password = ?
`

// GetUsuarioByCredentials はユーザー名とパスワードの完全一致でログイン
// ユーザーを取得する。一致する行が無い場合はsql.ErrNoRowsを返す。
func (q *Queries) GetUsuarioByCredentials(ctx context.Context, arg GetUsuarioByCredentialsParams) (Usuario, error) {
	row := q.db.QueryRowContext(ctx, getUsuarioByCredentials, arg.Username, arg.Password)
	var u Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

// GetUsuarioByCredentialsParams はGetUsuarioByCredentialsのパラメータ。
type GetUsuarioByCredentialsParams struct {
	Username string
	Password string
}
