package excel

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"trialstat/domain/core"
	"trialstat/domain/trial"
	"trialstat/internal"
	"trialstat/internal/errors"
)

// DataReader handles reading trial measurement workbooks (xlsx or csv)
type DataReader struct {
	filePath string
	sheet    string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewDataReader creates a new data reader for the given file. The sheet name
// only applies to xlsx input.
func NewDataReader(filePath, sheet string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		sheet:    sheet,
		fileType: fileType,
		log:      internal.DefaultLogger,
	}
}

// ReadData reads the workbook into grouped samples, one GroupSet per
// parameter. Rows with non-numeric or missing values are skipped, not fatal.
func (r *DataReader) ReadData() (*TrialData, error) {
	r.log.Info("reading %s trial file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DataSourceError(r.fileType, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InvalidInput("trial file must have a header row and at least one data row")
	}

	data, err := groupRows(rows)
	if err != nil {
		return nil, err
	}

	r.log.Info("loaded %d rows (%d skipped) across %d parameters",
		data.RowCount, data.Skipped, len(data.Parameters))
	return data, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DataSourceError("xlsx", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.DataSourceError("xlsx", err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DataSourceError("csv", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.DataSourceError("csv", err)
	}
	return rows, nil
}

// groupRows converts raw string rows into grouped samples. The first row is
// the header; required columns are parameter, block, is_control, value.
func groupRows(rows [][]string) (*TrialData, error) {
	idx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	data := &TrialData{
		Sets: make(map[core.ParameterKey]trial.GroupSet),
	}
	// group position per (parameter, block) for stable ordering
	groupPos := make(map[string]int)

	for _, row := range rows[1:] {
		param := cell(row, idx[colParameter])
		block := cell(row, idx[colBlock])
		if param == "" || block == "" {
			data.Skipped++
			continue
		}

		value, err := strconv.ParseFloat(cell(row, idx[colValue]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			data.Skipped++
			continue
		}
		isControl := parseBool(cell(row, idx[colControl]))

		key := core.ParameterKey(param)
		gs, ok := data.Sets[key]
		if !ok {
			gs = trial.GroupSet{Parameter: key, Name: param}
			data.Parameters = append(data.Parameters, key)
		}

		posKey := param + "\x00" + block
		pos, ok := groupPos[posKey]
		if !ok {
			pos = len(gs.Groups)
			groupPos[posKey] = pos
			gs.Groups = append(gs.Groups, trial.Group{Code: block, IsControl: isControl})
		}
		gs.Groups[pos].Values = append(gs.Groups[pos].Values, value)

		data.Sets[key] = gs
		data.RowCount++
	}

	if len(data.Parameters) == 0 {
		return nil, errors.InvalidInput("no usable measurement rows found")
	}
	return data, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colParameter, colBlock, colValue} {
		if _, ok := idx[required]; !ok {
			return nil, errors.InvalidInput("missing required column: " + required)
		}
	}
	// is_control is optional; default is no control group
	if _, ok := idx[colControl]; !ok {
		idx[colControl] = -1
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}
