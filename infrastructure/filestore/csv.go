// Package filestore lê arquivos delimitados do disco para tabelas em memória
package filestore

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

// ReadCSV lê o arquivo em path e converte cada coluna para o tipo declarado
// no schema. Colunas não declaradas são mantidas como texto.
func ReadCSV(path string, schema domain.Schema) (*domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	table, err := Decode(file, schema)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	return table, nil
}

// ReadCSVHead lê apenas as n primeiras linhas de path e conta as demais
func ReadCSVHead(path string, schema domain.Schema, n int) (*domain.Table, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	table, total, err := DecodeHead(file, schema, n)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "erro ao ler %s", path)
	}

	return table, total, nil
}

// Decode converte o conteúdo CSV de r em uma tabela
func Decode(r io.Reader, schema domain.Schema) (*domain.Table, error) {
	table, _, err := decode(r, schema, -1)
	return table, err
}

// DecodeHead converte as n primeiras linhas de r. As linhas seguintes são
// apenas contadas, sem conversão de tipo. Retorna a tabela e o total de linhas.
func DecodeHead(r io.Reader, schema domain.Schema, n int) (*domain.Table, int, error) {
	if n < 0 {
		n = 0
	}
	return decode(r, schema, n)
}

// decode lê até limit linhas convertidas; limit negativo lê todas
func decode(r io.Reader, schema domain.Schema, limit int) (*domain.Table, int, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, errors.New("arquivo sem cabeçalho")
		}
		return nil, 0, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	columns := make([]domain.Column, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		kind, _ := schema.Kind(name)
		columns[i] = domain.Column{Name: name, Kind: kind}
	}

	table := &domain.Table{Columns: columns, Rows: make([][]any, 0)}

	for _, c := range schema.Columns {
		if c.Kind == domain.KindTime && table.ColumnIndex(c.Name) < 0 {
			return nil, 0, errors.Errorf("coluna de data %q ausente no cabeçalho", c.Name)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		line++

		if limit >= 0 && len(table.Rows) >= limit {
			continue
		}

		row := make([]any, len(columns))
		for i, raw := range record {
			value, err := parseCell(raw, columns[i].Kind)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "linha %d, coluna %q", line, columns[i].Name)
			}
			row[i] = value
		}
		table.Rows = append(table.Rows, row)
	}

	return table, line - 1, nil
}

func parseCell(raw string, kind domain.ColumnKind) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	switch kind {
	case domain.KindInt:
		return strconv.ParseInt(s, 10, 64)
	case domain.KindFloat:
		return strconv.ParseFloat(s, 64)
	case domain.KindBool:
		return strconv.ParseBool(s)
	case domain.KindTime:
		return utils.ParseDate(s)
	default:
		return raw, nil
	}
}
