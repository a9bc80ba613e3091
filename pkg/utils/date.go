package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// ParseDate interpreta datas nos formatos aceitos pelos arquivos de dados
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}
