package db

import "context"

const listTimes = `
SELECT id, nome, logo_url FROM times
`

// ListTimes は全チームを取得する。並び順は保証しない。
func (q *Queries) ListTimes(ctx context.Context) ([]Time, error) {
	rows, err := q.db.QueryContext(ctx, listTimes)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var times []Time
	for rows.Next() {
		var t Time
		if err := rows.Scan(&t.ID, &t.Nome, &t.LogoURL); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

const createTime = `
INSERT INTO times (id, nome, logo_url)
VALUES (?, ?, ?)
`

// CreateTimeParams はCreateTimeのパラメータ。
type CreateTimeParams struct {
	ID      string
	Nome    string
	LogoURL string
}

// CreateTime はチームを1件挿入する。
func (q *Queries) CreateTime(ctx context.Context, arg CreateTimeParams) error {
	_, err := q.db.ExecContext(ctx, createTime, arg.ID, arg.Nome, arg.LogoURL)
	return err
}

const getTimeByNome = `
SELECT id, nome, logo_url FROM times
WHERE nome = ?
`

// GetTimeByNome はチーム名でチームを取得する。
// 該当行が無い場合はsql.ErrNoRowsを返す。
func (q *Queries) GetTimeByNome(ctx context.Context, nome string) (Time, error) {
	row := q.db.QueryRowContext(ctx, getTimeByNome, nome)
	var t Time
	err := row.Scan(&t.ID, &t.Nome, &t.LogoURL)
	return t, err
}

const updateTimeLogoURL = `
UPDATE times SET logo_url = ? WHERE nome = ?
`

// UpdateTimeLogoURLParams はUpdateTimeLogoURLのパラメータ。
type UpdateTimeLogoURLParams struct {
	LogoURL string
	Nome    string
}

// UpdateTimeLogoURL はチーム名を参照キーとしてロゴURLのみ更新する。
func (q *Queries) UpdateTimeLogoURL(ctx context.Context, arg UpdateTimeLogoURLParams) error {
	_, err := q.db.ExecContext(ctx, updateTimeLogoURL, arg.LogoURL, arg.Nome)
	return err
}

const deleteTime = `
DELETE FROM times WHERE nome = ?
`

// DeleteTime はチーム名でチームを削除する。
func (q *Queries) DeleteTime(ctx context.Context, nome string) error {
	_, err := q.db.ExecContext(ctx, deleteTime, nome)
	return err
}
