// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "scrum-sensei"
	AppVersion = "0.3.0"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultSQLitePath = "data/scrum_sensei.db"
	DefaultTopicLimit = 3
	DefaultStatsTTL   = 5 * time.Minute
)
