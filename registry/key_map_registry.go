/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/suparena/tablestore/errors"
)

// KeyMap describes how a domain type maps onto table keys. Templates may
// contain {Field} macros that are replaced with the item's field values,
// e.g. PartitionKey: "USER#{ID}", RowKey: "PROFILE".
type KeyMap struct {
	PartitionKey string
	RowKey       string
}

var (
	keyMapRegistry = make(map[reflect.Type]KeyMap)
	mu             sync.RWMutex
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// RegisterKeyMap associates a Go type T with its table key templates.
func RegisterKeyMap[T any](km KeyMap) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keyMapRegistry[t] = km
}

// GetKeyMap retrieves the key map for type T, if any.
func GetKeyMap[T any]() (KeyMap, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	km, ok := keyMapRegistry[t]
	return km, ok
}

// ExpandKeys resolves the key templates for an item, replacing each {Field}
// macro with the item's value for that field. Field names follow the item's
// JSON encoding. Returns the concrete partition and row keys.
func ExpandKeys(km KeyMap, item any) (string, string, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal item: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", "", fmt.Errorf("failed to decode item fields: %w", err)
	}

	pk, err := expandTemplate(km.PartitionKey, fields)
	if err != nil {
		return "", "", err
	}
	rk, err := expandTemplate(km.RowKey, fields)
	if err != nil {
		return "", "", err
	}
	return pk, rk, nil
}

// ExpandKeysFor is a convenience wrapper combining the registry lookup with
// template expansion for a single item.
func ExpandKeysFor[T any](item T) (string, string, error) {
	km, ok := GetKeyMap[T]()
	if !ok {
		return "", "", fmt.Errorf("%w: %T", errors.ErrNoKeyMap, item)
	}
	return ExpandKeys(km, item)
}

func expandTemplate(template string, fields map[string]any) (string, error) {
	var missing []string
	expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		name := strings.Trim(macro, "{}")
		val, ok := fields[name]
		if !ok || val == nil {
			missing = append(missing, name)
			return ""
		}
		switch tv := val.(type) {
		case string:
			return tv
		case float64:
			// json numbers decode as float64; render integers without a
			// fractional part.
			if tv == float64(int64(tv)) {
				return fmt.Sprintf("%d", int64(tv))
			}
			return fmt.Sprintf("%v", tv)
		case bool:
			return fmt.Sprintf("%v", tv)
		default:
			missing = append(missing, name)
			return ""
		}
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("key template %q references unresolved fields %v", template, missing)
	}
	return expanded, nil
}
