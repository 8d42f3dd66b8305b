package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// LoadWithEnv reads <currEnv>.yaml from the first directory that has it and
// overlays environment variables. configPath entries are relative to the working directory.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	path, err := locateConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Env keys are matched against the keys the file already defines,
	// so POSTGRES_SSLMODE lands on postgres.sslMode.
	fileKeys := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func locateConfigFile(name string, extraDirs []string) (string, error) {
	dirs := []string{defaultPath}
	if len(extraDirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range extraDirs {
			dirs = append(dirs, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		// env overrides arrive lower-cased when no file key matched
		MatchName: strings.EqualFold,
	}
}
