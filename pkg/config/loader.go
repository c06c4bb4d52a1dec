package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// readConfigFile 读取配置文件
// "data/" 前缀且 embedded 已初始化时从嵌入资源读取，否则读磁盘
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// loadYAML 读取并解析 YAML 到 out（out 可预先填充默认值）
func loadYAML(path string, out interface{}) error {
	data, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}
