package loading

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-forecast/internal/domain"
)

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrUnknownDataset  = errors.New("unknown dataset")
)

var datasetLabels = map[domain.DatasetName]string{
	domain.DatasetTrain: "Training data",
	domain.DatasetTest:  "Test data",
}

// DatasetError é um erro com contexto do arquivo esperado
type DatasetError struct {
	Err     error
	Dataset domain.DatasetName
	Path    string
}

func (e *DatasetError) Error() string {
	if errors.Is(e.Err, ErrDatasetNotFound) {
		label, ok := datasetLabels[e.Dataset]
		if !ok {
			label = fmt.Sprintf("Dataset %s", e.Dataset)
		}
		return fmt.Sprintf("%s not found at %s. Run the dataset download first.", label, e.Path)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Dataset, e.Path)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}
