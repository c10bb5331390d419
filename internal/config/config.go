package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config — настройки из YAML-файла. Всё опционально.
type Config struct {
	// Ignore — имена, исключаемые при построении диаграммы.
	Ignore []string `yaml:"ignore"`
	// Templates — заготовки содержимого по расширению (без точки),
	// поверх встроенных.
	Templates map[string]string `yaml:"templates"`
}

// Default — набор по умолчанию: служебные каталоги VCS и сборки.
func Default() Config {
	return Config{
		Ignore: []string{".git", "__pycache__", "node_modules", ".DS_Store"},
	}
}

// Load читает конфиг из файла. Пустой путь — значения по умолчанию.
// Пустое поле ignore в файле тоже заменяется набором по умолчанию.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("не удалось прочитать конфиг %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("не удалось разобрать конфиг %q: %w", path, err)
	}
	if len(c.Ignore) == 0 {
		c.Ignore = Default().Ignore
	}
	return c, nil
}
