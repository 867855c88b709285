package config

import (
	"time"

	"KingdomsMap/internal/plan"
)

type Config struct {
	API        APIConfig             `yaml:"api" mapstructure:"api"`
	Kingdoms   plan.Groups           `yaml:"kingdoms" mapstructure:"kingdoms"`
	Palette    map[string]plan.Color `yaml:"palette" mapstructure:"palette"`
	Render     RenderConfig          `yaml:"render" mapstructure:"render"`
	Refresh    RefreshConfig         `yaml:"refresh" mapstructure:"refresh"`
	HTTPServer HTTPServerConfig      `yaml:"httpserver" mapstructure:"httpserver"`
	MongoDB    MongoDBConfig         `yaml:"mongodb" mapstructure:"mongodb"`
	MySQL      MySQLConfig           `yaml:"mysql" mapstructure:"mysql"`
	Log        LogConfig             `yaml:"log" mapstructure:"log"`
	JWTSecret  string                `yaml:"jwt_secret" mapstructure:"jwt_secret"`
}

type APIConfig struct {
	URL         string        `yaml:"url" mapstructure:"url"`
	Key         string        `yaml:"key" mapstructure:"key"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MinInterval time.Duration `yaml:"min_interval" mapstructure:"min_interval"` // 两次拉取的最小间隔
}

type RenderConfig struct {
	Output string `yaml:"output" mapstructure:"output"`
	Size   int    `yaml:"size" mapstructure:"size"` // px
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"` // 0 表示不定时刷新
	OnStart  bool          `yaml:"on_start" mapstructure:"on_start"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

// Plan 按配置分组和调色板展开绘制计划。
func (c Config) Plan() []plan.Entry {
	return plan.FromGroups(c.Kingdoms, c.Palette)
}

func defaults() map[string]any {
	return map[string]any{
		"api.url":                   "https://com3.kingdoms.com/api/external.php",
		"api.key":                   "",
		"api.timeout":               "30s",
		"api.min_interval":          "1m",
		"render.output":             "map.svg",
		"render.size":               1024,
		"refresh.interval":          "0s",
		"refresh.on_start":          true,
		"httpserver.host":           "0.0.0.0",
		"httpserver.port":           8080,
		"mongodb.uri":               "",
		"mongodb.database":          "kingdoms_map",
		"mongodb.connect_timeout_s": 3,
		"mysql.host":                "",
		"log.level":                 "info",
		"jwt_secret":                "",
	}
}
