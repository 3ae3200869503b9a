// Package tabular reads CSV and XLSX files into a raw token matrix so a host
// can run type inference over file-backed columns. The conversion and
// inference packages never touch a file themselves; this adapter is the
// collaborator that owns the data source.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"coltype/domain/infer"
	"coltype/internal"
	apperrors "coltype/internal/errors"
)

// TableData is a parsed table: a header row and the body rows beneath it.
// Rows keep their raw cell tokens untouched.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// Reader handles reading XLSX and CSV files
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewReader creates a reader for the given file, detecting the format from
// the extension. Anything that is not .csv is read as XLSX.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger}
}

// ReadData reads the file into a TableData
func (r *Reader) ReadData() (*TableData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

func (r *Reader) readCSVData() (*TableData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, apperrors.ParseError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Ragged rows are tolerated; inference fixes column count on row one.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.ParseError("failed to read CSV file", err)
	}
	r.log.Debug("[tabular] read %d CSV records from %s", len(records), r.filePath)

	return buildTable(records)
}

func (r *Reader) readExcelData() (*TableData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.ParseError("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.InvalidInput("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.ParseError(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	r.log.Debug("[tabular] read %d rows from sheet %s of %s", len(rows), sheets[0], r.filePath)

	return buildTable(rows)
}

func buildTable(records [][]string) (*TableData, error) {
	if len(records) < 2 {
		return nil, apperrors.InvalidInput("file must have at least a header row and one data row")
	}
	return &TableData{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// InferTypes runs matrix inference over the table body, one distribution per
// column aligned with Headers.
func (t *TableData) InferTypes(engine *infer.Engine, opts infer.Options) []*infer.Types {
	return engine.InferMatrixSlice(t.Rows, opts)
}

// ColumnTypes maps each header to the most common inferred type of its
// column. Columns beyond the header width (or vice versa) are dropped.
func (t *TableData) ColumnTypes(engine *infer.Engine, opts infer.Options) map[string]string {
	infos := t.InferTypes(engine, opts)
	out := make(map[string]string, len(t.Headers))
	for j, header := range t.Headers {
		if j >= len(infos) || infos[j] == nil {
			break
		}
		if ranked := infos[j].MostCommon(1); len(ranked) > 0 {
			out[header] = ranked[0].Name
		}
	}
	return out
}
