package db

import "context"

const listPartidas = `
SELECT id, data, time_casa, time_visitante, placar_casa, placar_visitante
FROM partidas
`

// ListPartidas は全試合を取得する。並び順は保証しない。
func (q *Queries) ListPartidas(ctx context.Context) ([]Partida, error) {
	rows, err := q.db.QueryContext(ctx, listPartidas)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var partidas []Partida
	for rows.Next() {
		var p Partida
		if err := rows.Scan(&p.ID, &p.Data, &p.TimeCasa, &p.TimeVisitante, &p.PlacarCasa, &p.PlacarVisitante); err != nil {
			return nil, err
		}
		partidas = append(partidas, p)
	}
	return partidas, rows.Err()
}

const createPartida = `
INSERT INTO partidas (id, data, time_casa, time_visitante, placar_casa, placar_visitante)
VALUES (?, ?, ?, ?, ?, ?)
`

// CreatePartidaParams はCreatePartidaのパラメータ。
type CreatePartidaParams struct {
	ID              string
	Data            string
	TimeCasa        string
	TimeVisitante   string
	PlacarCasa      int64
	PlacarVisitante int64
}

// CreatePartida は試合を1件挿入する。
func (q *Queries) CreatePartida(ctx context.Context, arg CreatePartidaParams) error {
	_, err := q.db.ExecContext(ctx, createPartida,
		arg.ID, arg.Data, arg.TimeCasa, arg.TimeVisitante, arg.PlacarCasa, arg.PlacarVisitante)
	return err
}

const getPartidaByID = `
SELECT id, data, time_casa, time_visitante, placar_casa, placar_visitante
FROM partidas
WHERE id = ?
`

// GetPartidaByID はIDで試合を取得する。
// 該当行が無い場合はsql.ErrNoRowsを返す。
func (q *Queries) GetPartidaByID(ctx context.Context, id string) (Partida, error) {
	row := q.db.QueryRowContext(ctx, getPartidaByID, id)
	var p Partida
	err := row.Scan(&p.ID, &p.Data, &p.TimeCasa, &p.TimeVisitante, &p.PlacarCasa, &p.PlacarVisitante)
	return p, err
}

const updatePartida = `
UPDATE partidas
SET data = ?, time_casa = ?, time_visitante = ?, placar_casa = ?, placar_visitante = ?
WHERE id = ?
`

// UpdatePartidaParams はUpdatePartidaのパラメータ。
type UpdatePartidaParams struct {
	Data            string
	TimeCasa        string
	TimeVisitante   string
	PlacarCasa      int64
	PlacarVisitante int64
	ID              string
}

// UpdatePartida は試合の全フィールドを更新する。
func (q *Queries) UpdatePartida(ctx context.Context, arg UpdatePartidaParams) error {
	_, err := q.db.ExecContext(ctx, updatePartida,
		arg.Data, arg.TimeCasa, arg.TimeVisitante, arg.PlacarCasa, arg.PlacarVisitante, arg.ID)
	return err
}

const deletePartida = `
DELETE FROM partidas WHERE id = ?
`

// DeletePartida はIDで試合を削除する。
func (q *Queries) DeletePartida(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deletePartida, id)
	return err
}
