package db

import "context"

const listJogadores = `
SELECT id, nome, idade, posicao, time_q_joga FROM jogadores
`

// ListJogadores は全選手を取得する。並び順は保証しない。
func (q *Queries) ListJogadores(ctx context.Context) ([]Jogador, error) {
	rows, err := q.db.QueryContext(ctx, listJogadores)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var jogadores []Jogador
	for rows.Next() {
		var j Jogador
		if err := rows.Scan(&j.ID, &j.Nome, &j.Idade, &j.Posicao, &j.TimeQJoga); err != nil {
			return nil, err
		}
		jogadores = append(jogadores, j)
	}
	return jogadores, rows.Err()
}

const createJogador = `
INSERT INTO jogadores (id, nome, idade, posicao, time_q_joga)
VALUES (?, ?, ?, ?, ?)
`

// CreateJogadorParams はCreateJogadorのパラメータ。
type CreateJogadorParams struct {
	ID        string
	Nome      string
	Idade     int64
	Posicao   string
	TimeQJoga string
}

// CreateJogador は選手を1件挿入する。
func (q *Queries) CreateJogador(ctx context.Context, arg CreateJogadorParams) error {
	_, err := q.db.ExecContext(ctx, createJogador,
		arg.ID, arg.Nome, arg.Idade, arg.Posicao, arg.TimeQJoga)
	return err
}

const getJogadorByNome = `
SELECT id, nome, idade, posicao, time_q_joga FROM jogadores
WHERE nome = ?
`

// GetJogadorByNome は現在の選手名で選手を取得する。
// 該当行が無い場合はsql.ErrNoRowsを返す。
func (q *Queries) GetJogadorByNome(ctx context.Context, nome string) (Jogador, error) {
	row := q.db.QueryRowContext(ctx, getJogadorByNome, nome)
	var j Jogador
	err := row.Scan(&j.ID, &j.Nome, &j.Idade, &j.Posicao, &j.TimeQJoga)
	return j, err
}

const updateJogador = `
UPDATE jogadores
SET nome = ?, idade = ?, posicao = ?, time_q_joga = ?
WHERE nome = ?
`

// UpdateJogadorParams はUpdateJogadorのパラメータ。
// Nomeは現在の選手名、NovoNomeは更新後の選手名。
type UpdateJogadorParams struct {
	NovoNome  string
	Idade     int64
	Posicao   string
	TimeQJoga string
	Nome      string
}

// UpdateJogador は現在の選手名を参照キーとして全フィールドを更新する。
// 選手名自体の変更も可能。
func (q *Queries) UpdateJogador(ctx context.Context, arg UpdateJogadorParams) error {
	_, err := q.db.ExecContext(ctx, updateJogador,
		arg.NovoNome, arg.Idade, arg.Posicao, arg.TimeQJoga, arg.Nome)
	return err
}

const deleteJogador = `
DELETE FROM jogadores WHERE nome = ?
`

// DeleteJogador は選手名で選手を削除する。
func (q *Queries) DeleteJogador(ctx context.Context, nome string) error {
	_, err := q.db.ExecContext(ctx, deleteJogador, nome)
	return err
}
