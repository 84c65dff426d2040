package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by WithEnv and PathFromEnv.
const (
	EnvConfig   = "SHADERLAB_CONFIG"
	EnvLogLevel = "SHADERLAB_LOG_LEVEL"
	EnvFPS      = "SHADERLAB_FPS"
)

// LoadDotEnv reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the environment win. The file may be missing; that is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// PathFromEnv returns the preferences path named by SHADERLAB_CONFIG, or DefaultPath.
func PathFromEnv(lookup func(string) (string, bool)) string {
	if v, ok := lookup(EnvConfig); ok && v != "" {
		return v
	}
	return DefaultPath
}

// WithEnv returns a copy of p with the environment overrides applied. lookup is usually os.LookupEnv.
func WithEnv(p Prefs, lookup func(string) (string, bool)) (Prefs, error) {
	out := p.Clone()
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		out.Log.Level = v
	}
	if v, ok := lookup(EnvFPS); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return p, fmt.Errorf("%s=%q: want a non-negative integer", EnvFPS, v)
		}
		out.Window.TargetFPS = int32(n)
	}
	return out, nil
}
