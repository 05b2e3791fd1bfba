package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadDotEnvOnce sync.Once

// LoadDotEnv は .env が存在すれば 1 度だけ読み込む。既に設定済みの環境変数は上書きしない。
func LoadDotEnv() {
	loadDotEnvOnce.Do(func() {
		loadDotEnvFile(".env")
	})
}

func loadDotEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("dotenv: failed to load %s: %v", path, err)
	}
}
