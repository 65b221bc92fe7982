package campeonato

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。
const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
    -- ユーザーの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- ログインユーザー名
    username TEXT NOT NULL UNIQUE,
    -- ログインパスワード
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS partidas (
    -- 試合の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 試合の開催日
    data TEXT NOT NULL,
    -- ホームチーム名
    time_casa TEXT NOT NULL,
    -- アウェイチーム名
    time_visitante TEXT NOT NULL,
    -- ホームチームの得点
    placar_casa INTEGER NOT NULL,
    -- アウェイチームの得点
    placar_visitante INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS jogadores (
    -- 選手の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 選手名。更新・削除時の参照キー
    nome TEXT NOT NULL UNIQUE,
    -- 年齢
    idade INTEGER NOT NULL,
    -- ポジション
    posicao TEXT NOT NULL,
    -- 所属チーム名
    time_q_joga TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS times (
    -- チームの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- チーム名。更新・削除時の参照キー
    nome TEXT NOT NULL UNIQUE,
    -- チームロゴ画像のURL
    logo_url TEXT NOT NULL
);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
