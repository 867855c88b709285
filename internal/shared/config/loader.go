package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	envPrefix            = "TSM"
)

var (
	mu   sync.RWMutex
	conf Config
)

// Get 返回当前配置的副本；热更新后下一次 Get 即可拿到新值。
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return conf
}

// Load 加载配置：
// 1) 传入 cfgName（相对/绝对路径）则优先使用；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`。
//
// 环境变量 TSM_<SECTION>_<KEY> 覆盖文件值，例如 TSM_API_KEY。
// JWT_SECRET 未设置时回填配置中的 jwt_secret。
func Load(cfgName string) error {
	path, err := resolvePath(cfgName)
	if err != nil {
		return err
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := unmarshal(v)
	if err != nil {
		return err
	}
	set(c)

	v.OnConfigChange(func(e fsnotify.Event) {
		next, err := unmarshal(v)
		if err != nil {
			log.Printf("config reload failed, keep previous: %v", err)
			return
		}
		log.Printf("config reloaded: %s", e.Name)
		set(next)
	})
	v.WatchConfig()
	return nil
}

// MustLoad 是启动阶段用的 Load，失败直接 panic。
func MustLoad(cfgName string) {
	if err := Load(cfgName); err != nil {
		panic(err)
	}
}

func set(c Config) {
	mu.Lock()
	conf = c
	mu.Unlock()
	if os.Getenv("JWT_SECRET") == "" && c.JWTSecret != "" {
		_ = os.Setenv("JWT_SECRET", c.JWTSecret)
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var c Config
	err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func resolvePath(cfgName string) (string, error) {
	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			return cfgName, checkExist(cfgName)
		}
		curDir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		p := filepath.Join(curDir, cfgName)
		return p, checkExist(p)
	}

	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from: %s", defaultConfigRelPath, startDir)
		}
		dir = parent
	}
}

func checkExist(p string) error {
	if !fileExist(p) {
		return fmt.Errorf("config file not exist, configPath=%v", p)
	}
	return nil
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
