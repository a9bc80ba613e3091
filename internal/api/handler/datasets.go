package handler

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/loading"
	"github.com/vfg2006/sales-forecast/pkg/log"
)

const (
	defaultPreviewLimit = 20
	maxPreviewLimit     = 1000
)

type datasetInfo struct {
	Name      domain.DatasetName `json:"name"`
	FileName  string             `json:"file_name"`
	Columns   []domain.Column    `json:"columns"`
	Available bool               `json:"available"`
}

// ListDatasets lista os datasets conhecidos e se o arquivo existe no diretório raw
func ListDatasets(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - ListDatasets")

		datasets := make([]datasetInfo, 0, len(domain.Datasets()))
		for _, name := range domain.Datasets() {
			schema, _ := domain.SchemaFor(name)
			_, err := os.Stat(filepath.Join(loader.RawDir(), schema.FileName))
			datasets = append(datasets, datasetInfo{
				Name:      name,
				FileName:  schema.FileName,
				Columns:   schema.Columns,
				Available: err == nil,
			})
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"raw_dir":  loader.RawDir(),
			"datasets": datasets,
		})
	}
}

// DownloadDatasets baixa os arquivos da competição para o diretório raw
func DownloadDatasets(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DownloadDatasets")

		files, err := loader.Download(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"raw_dir": loader.RawDir(),
			"files":   files,
		})
	}
}

// PreviewDataset retorna as primeiras linhas de um dataset
func PreviewDataset(loader loading.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - PreviewDataset")

		name := domain.DatasetName(httprouter.ParamsFromContext(r.Context()).ByName("name"))

		limit, err := parseLimit(r, defaultPreviewLimit, maxPreviewLimit)
		if err != nil {
			writeError(w, r, &requestError{err: err})
			return
		}

		head, total, err := loader.Preview(name, limit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"dataset":    name,
			"total_rows": total,
			"columns":    head.Columns,
			"rows":       previewRows(head.Rows),
		})
	}
}

// parseLimit lê o parâmetro limit da query string
func parseLimit(r *http.Request, fallback, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, fmt.Errorf("limit deve ser um inteiro entre 1 e %d", maxLimit)
	}
	return limit, nil
}

// previewRows troca valores não representáveis em JSON por null
func previewRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case float64:
				if math.IsNaN(v) || math.IsInf(v, 0) {
					cells[j] = nil
					continue
				}
				cells[j] = v
			case time.Time:
				cells[j] = v.Format(time.DateOnly)
			default:
				cells[j] = v
			}
		}
		out[i] = cells
	}
	return out
}
