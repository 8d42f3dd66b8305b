package config

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/slighter12/go-lib/database/postgres"
)

// canonicalizeEnvKey turns ENV_VAR_NAME into a dotted koanf path, reusing the
// spelling of keys already present in existing. Segments with no match are kept lower-case.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	node := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

// foldKey lower-cases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := os.Getenv(prefix+"HOST"), os.Getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}
}
