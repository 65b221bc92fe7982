// Package campeonato はサッカー選手権APIの内部実装を提供する。
//
// ログインによるJWT発行と、試合（partidas）・選手（jogadores）・
// チーム（times）のCRUDを担当する。保護ルートはすべてJWT検証を
// 通過したリクエストのみ受け付ける。書き込みは存在確認と変更を
// 同一トランザクションで行い、存在しない行への更新・削除は
// 何も変更せずに404を返す。
package campeonato
