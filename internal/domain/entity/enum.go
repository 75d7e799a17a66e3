package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EnumOption es un par valor/nombre del catálogo de enumeraciones.
type EnumOption struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// enumSet describe una enumeración cerrada con ordinales 1..n.
type enumSet[T ~int] struct {
	label string
	names []string
}

func (s enumSet[T]) valid(v T) bool {
	return int(v) >= 1 && int(v) <= len(s.names)
}

func (s enumSet[T]) name(v T) string {
	if !s.valid(v) {
		return ""
	}
	return s.names[int(v)-1]
}

// parse acepta el nombre (sin distinguir mayúsculas) o el ordinal.
func (s enumSet[T]) parse(raw string) (T, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if s.valid(T(n)) {
			return T(n), nil
		}
		return 0, fmt.Errorf("%s: valor fuera de rango %d", s.label, n)
	}
	for i, name := range s.names {
		if strings.EqualFold(name, raw) {
			return T(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%s: valor desconocido %q", s.label, raw)
}

func (s enumSet[T]) options() []EnumOption {
	out := make([]EnumOption, len(s.names))
	for i, name := range s.names {
		out[i] = EnumOption{Value: i + 1, Name: name}
	}
	return out
}

func (s enumSet[T]) values() []T {
	out := make([]T, len(s.names))
	for i := range s.names {
		out[i] = T(i + 1)
	}
	return out
}

func (s enumSet[T]) marshal(v T) ([]byte, error) {
	if !s.valid(v) {
		return []byte("null"), nil
	}
	return json.Marshal(s.name(v))
}

func (s enumSet[T]) unmarshal(data []byte) (T, error) {
	if string(data) == "null" {
		return 0, nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return s.parse(str)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, fmt.Errorf("%s: se esperaba texto o número", s.label)
	}
	return s.parse(strconv.Itoa(n))
}
