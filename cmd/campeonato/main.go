// 選手権APIのエントリポイント。
// ログインによるJWT発行と、試合・選手・チームのCRUDを提供する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/campeonato/internal/campeonato"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	server, err := campeonato.NewServer(port)
	if err != nil {
		log.Fatalf("選手権APIサーバーの初期化に失敗: %v", err)
	}

	log.Printf("選手権APIを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("選手権APIの起動に失敗: %v", err)
	}
}
