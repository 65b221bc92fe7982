package db

// Usuario はusuariosテーブルの1行を表す。ログイン認証にのみ使用する。
type Usuario struct {
	// ID はユーザーの一意識別子（UUID）。
	ID string `json:"id"`
	// Username はログインユーザー名。
	Username string `json:"username"`
	// Password はログインパスワード。レスポンスには含めない。
	Password string `json:"-"`
}

// Partida はpartidasテーブルの1行（試合）を表す。
type Partida struct {
	// ID は試合の一意識別子（UUID）。
	ID string `json:"id"`
	// Data は試合の開催日。
	Data string `json:"data"`
	// TimeCasa はホームチーム名。
	TimeCasa string `json:"time_casa"`
	// TimeVisitante はアウェイチーム名。
	TimeVisitante string `json:"time_visitante"`
	// PlacarCasa はホームチームの得点。
	PlacarCasa int64 `json:"placar_casa"`
	// PlacarVisitante はアウェイチームの得点。
	PlacarVisitante int64 `json:"placar_visitante"`
}

// Jogador はjogadoresテーブルの1行（選手）を表す。
// 外部からの参照キーはIDではなくNome。
type Jogador struct {
	// ID は選手の一意識別子（UUID）。
	ID string `json:"id"`
	// Nome は選手名。一意であり、更新・削除時の参照キーとなる。
	Nome string `json:"nome"`
	// Idade は選手の年齢。
	Idade int64 `json:"idade"`
	// Posicao は選手のポジション。
	Posicao string `json:"posicao"`
	// TimeQJoga は所属チーム名。
	TimeQJoga string `json:"time_q_joga"`
}

// Time はtimesテーブルの1行（チーム）を表す。
// 外部からの参照キーはIDではなくNome。
type Time struct {
	// ID はチームの一意識別子（UUID）。
	ID string `json:"id"`
	// Nome はチーム名。一意であり、更新・削除時の参照キーとなる。
	Nome string `json:"nome"`
	// LogoURL はチームロゴ画像のURL。
	LogoURL string `json:"logo_url"`
}
