package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/gpubench/internal/cmdline"
	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/schema"
)

// LoadFile reads a YAML defaults file and converts every entry whose key is
// not present in given into a synthetic command-line token.
func LoadFile(path string, given cmdline.Arguments) (cmdline.Arguments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.BenchError{
			Kind:    errors.KindConfig,
			Message: fmt.Sprintf("failed to read config file: %v", err),
			Cause:   err,
		}
	}
	return ParseDefaults(path, data, given)
}

// ParseDefaults converts YAML data the way LoadFile does. name is used in messages.
func ParseDefaults(name string, data []byte, given cmdline.Arguments) (cmdline.Arguments, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Configf("%s: failed to parse config file: %v", name, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The schema is written against JSON values.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Configf("%s: %v", name, err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, errors.Configf("%s: %v", name, err)
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		if key == "$schema" || given.Has(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tokens := make([]string, 0, len(keys))
	for _, key := range keys {
		tokens = append(tokens, toToken(key, doc[key]))
	}
	args, err := cmdline.Parse(tokens)
	if err != nil {
		return nil, errors.Configf("%s: %v", name, err)
	}
	return args, nil
}

func toToken(key string, value any) string {
	switch v := value.(type) {
	case bool:
		// 1/0 is accepted by both switches and 0/1 parameters.
		if v {
			return "--" + key + "=1"
		}
		return "--" + key + "=0"
	case int:
		return "--" + key + "=" + strconv.Itoa(v)
	case float64:
		return "--" + key + "=" + strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return "--" + key + "=" + strings.Join(parts, " ")
	default:
		return "--" + key + "=" + fmt.Sprint(v)
	}
}
