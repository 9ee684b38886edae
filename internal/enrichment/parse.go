// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package enrichment

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotObject = errors.New("enrichment: reply is not a JSON object")

// decodeObject parses a JSON-mode reply. Anything but a top-level object fails.
func decodeObject(text string) (map[string]any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return object, nil
}

// stringField reads a non-blank JSON string.
func stringField(object map[string]any, key string) *string {
	raw, ok := object[key].(string)
	if !ok {
		return nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	return &value
}

// numberField reads a JSON number, or a string holding one, rounded to an int.
func numberField(object map[string]any, key string) *int {
	var number float64

	switch raw := object[key].(type) {
	case float64:
		number = raw
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil
		}
		number = parsed
	default:
		return nil
	}

	if math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return nil
	}

	rounded := int(math.Round(number))
	return &rounded
}

// stringsField reads an array, keeping its non-blank string elements.
// An empty array is present and empty, which differs from an absent key.
func stringsField(object map[string]any, key string) *[]string {
	raw, ok := object[key].([]any)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, element := range raw {
		if text, ok := element.(string); ok && strings.TrimSpace(text) != "" {
			values = append(values, strings.TrimSpace(text))
		}
	}
	return &values
}
