// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
	"time"
)

// DatasetName identifica um dos arquivos do dataset de vendas
type DatasetName string

const (
	DatasetTrain        DatasetName = "train"
	DatasetTest         DatasetName = "test"
	DatasetStores       DatasetName = "stores"
	DatasetOil          DatasetName = "oil"
	DatasetHolidays     DatasetName = "holidays"
	DatasetTransactions DatasetName = "transactions"
)

// ColumnKind é o tipo declarado de uma coluna
type ColumnKind int

const (
	KindString ColumnKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

func (k ColumnKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "string"
	}
}

type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Schema descreve um arquivo delimitado e as colunas que ele deve conter
type Schema struct {
	Dataset  DatasetName
	FileName string
	Columns  []Column
}

// Kind retorna o tipo declarado da coluna; colunas não declaradas são texto
func (s Schema) Kind(name string) (ColumnKind, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return KindString, false
}

// Table é uma tabela em memória. Cada célula é nil, string, int64,
// float64, bool ou time.Time, conforme o tipo da coluna.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex retorna a posição da coluna ou -1
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// CellText converte uma célula para texto. Floats inteiros mantêm ".0" e
// datas à meia-noite omitem a hora.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return "nan"
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return floatText(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.DateTime)
	default:
		return ""
	}
}

// floatText usa notação científica fora de [1e-4, 1e16)
func floatText(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) {
		s += ".0"
	}
	return s
}

var schemas = map[DatasetName]Schema{
	DatasetTrain: {
		Dataset:  DatasetTrain,
		FileName: "train.csv",
		Columns: []Column{
			{Name: "id", Kind: KindInt},
			{Name: "date", Kind: KindTime},
			{Name: "store_nbr", Kind: KindInt},
			{Name: "family", Kind: KindString},
			{Name: "sales", Kind: KindFloat},
			{Name: "onpromotion", Kind: KindInt},
		},
	},
	DatasetTest: {
		Dataset:  DatasetTest,
		FileName: "test.csv",
		Columns: []Column{
			{Name: "id", Kind: KindInt},
			{Name: "date", Kind: KindTime},
			{Name: "store_nbr", Kind: KindInt},
			{Name: "family", Kind: KindString},
			{Name: "onpromotion", Kind: KindInt},
		},
	},
	DatasetStores: {
		Dataset:  DatasetStores,
		FileName: "stores.csv",
		Columns: []Column{
			{Name: "store_nbr", Kind: KindInt},
			{Name: "city", Kind: KindString},
			{Name: "state", Kind: KindString},
			{Name: "type", Kind: KindString},
			{Name: "cluster", Kind: KindInt},
		},
	},
	DatasetOil: {
		Dataset:  DatasetOil,
		FileName: "oil.csv",
		Columns: []Column{
			{Name: "date", Kind: KindTime},
			{Name: "dcoilwtico", Kind: KindFloat},
		},
	},
	DatasetHolidays: {
		Dataset:  DatasetHolidays,
		FileName: "holidays_events.csv",
		Columns: []Column{
			{Name: "date", Kind: KindTime},
			{Name: "type", Kind: KindString},
			{Name: "locale", Kind: KindString},
			{Name: "locale_name", Kind: KindString},
			{Name: "description", Kind: KindString},
			{Name: "transferred", Kind: KindBool},
		},
	},
	DatasetTransactions: {
		Dataset:  DatasetTransactions,
		FileName: "transactions.csv",
		Columns: []Column{
			{Name: "date", Kind: KindTime},
			{Name: "store_nbr", Kind: KindInt},
			{Name: "transactions", Kind: KindInt},
		},
	},
}

// SchemaFor retorna o schema declarado de um dataset
func SchemaFor(name DatasetName) (Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}

// Datasets lista os datasets conhecidos em ordem estável
func Datasets() []DatasetName {
	return []DatasetName{
		DatasetTrain,
		DatasetTest,
		DatasetStores,
		DatasetOil,
		DatasetHolidays,
		DatasetTransactions,
	}
}
