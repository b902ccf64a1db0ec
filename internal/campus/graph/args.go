package graph

import (
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

// IDs travel as strings on the wire. Anything that does not parse as an
// int64 is treated as an id that matches nothing.
func parseID(v any) (int64, bool) {
	switch id := v.(type) {
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		return n, err == nil
	case int:
		return int64(id), true
	case int64:
		return id, true
	case float64:
		return int64(id), id == float64(int64(id))
	default:
		return 0, false
	}
}

func argID(args map[string]any, name string) (int64, bool) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, false
	}
	return parseID(v)
}

func optID(args map[string]any, name string) *int64 {
	id, ok := argID(args, name)
	if !ok {
		return nil
	}
	return &id
}

func argString(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func optString(args map[string]any, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func argFloat(args map[string]any, name string) (float64, bool) {
	switch f := args[name].(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int64:
		return float64(f), true
	default:
		return 0, false
	}
}

func argRole(args map[string]any, name string) (domain.Role, error) {
	switch r := args[name].(type) {
	case domain.Role:
		return r, nil
	case string:
		return domain.ParseRole(r)
	default:
		return "", fmt.Errorf("unknown role %v", r)
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
