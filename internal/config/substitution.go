package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${env://VAR} and ${env://VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{env://([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// splitDefault splits "VAR:-default" into its name and default value.
func splitDefault(ref string) (name, fallback string, hasDefault bool) {
	name, fallback, hasDefault = strings.Cut(ref, ":-")
	return name, fallback, hasDefault
}

// EnvSubstituter expands environment references in raw config file content
// before it is handed to viper, so secrets such as API keys can stay out of
// the file itself.
type EnvSubstituter struct {
	// Lookup resolves a variable. Defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

func (e *EnvSubstituter) lookup(name string) string {
	fn := e.Lookup
	if fn == nil {
		fn = os.LookupEnv
	}
	v, _ := fn(name)
	return v
}

// SubstituteEnvVars replaces every ${env://VAR} and ${env://VAR:-default}
// reference in content. An unset or empty variable takes its default; a
// reference without a default to an unset variable is an error.
func (e *EnvSubstituter) SubstituteEnvVars(content string) (string, error) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		ref := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${env://")
		name, fallback, hasDefault := splitDefault(ref)

		if v := e.lookup(name); v != "" {
			return v
		}
		if hasDefault {
			return fallback
		}
		missing = append(missing, name)
		return match
	})

	if len(missing) > 0 {
		return "", &ConfigurationError{
			Key:    strings.Join(missing, ", "),
			Reason: "required environment variable not set",
		}
	}
	return result, nil
}

// HasEnvVars reports whether content contains any ${env://...} reference.
func HasEnvVars(content string) bool {
	return envVarPattern.MatchString(content)
}

// substitute is a convenience wrapper used by the loader.
func substitute(content string) (string, error) {
	if !HasEnvVars(content) {
		return content, nil
	}
	s := &EnvSubstituter{}
	out, err := s.SubstituteEnvVars(content)
	if err != nil {
		return "", fmt.Errorf("config env substitution failed: %w", err)
	}
	return out, nil
}
