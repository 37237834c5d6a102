package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrStageFileNotFound はステージの投入ファイルがどの形式でも見つからない場合のエラーです
var ErrStageFileNotFound = errors.New("stage file not found")

// 探索順
var stageFileExts = []string{".json", ".xlsx", ".csv"}

// LoadStage は dir から stageN.json / stageN.xlsx / stageN.csv の順に探して読み込みます
func LoadStage(dir string, stageNum uint) ([]Entry, string, error) {
	for _, ext := range stageFileExts {
		path := filepath.Join(dir, fmt.Sprintf("stage%d%s", stageNum, ext))
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, path, err
		}
		entries, err := LoadFile(path)
		return entries, path, err
	}
	return nil, "", fmt.Errorf("stage %d: %w", stageNum, ErrStageFileNotFound)
}

// LoadFile は拡張子に応じてファイルを読み込みます
func LoadFile(path string) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadJSON(f)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return readXLSXFile(path)
	default:
		return nil, fmt.Errorf("unsupported catalog file: %s", path)
	}
}

// ReadJSON は Entry の配列を読み込みます
func ReadJSON(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("catalog.ReadJSON: %w", err)
	}
	return entries, nil
}

// ReadCSV は term,translation[,example_sentence] の行を読み込みます。先頭のヘッダー行は読み飛ばします
func ReadCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog.ReadCSV: %w", err)
	}
	return entriesFromRows(records), nil
}

func readXLSXFile(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.readXLSXFile: %w", err)
	}
	defer f.Close()
	return readXLSX(f)
}

// ReadXLSX は最初のシートを CSV と同じ列構成で読み込みます
func ReadXLSX(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog.ReadXLSX: %w", err)
	}
	defer f.Close()
	return readXLSX(f)
}

func readXLSX(f *excelize.File) ([]Entry, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("catalog: workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("catalog: read sheet %q: %w", sheet, err)
	}
	return entriesFromRows(rows), nil
}

func entriesFromRows(rows [][]string) []Entry {
	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		if i == 0 && termKey(row[0]) == "term" {
			continue
		}
		e := Entry{Term: row[0], Translation: row[1]}
		if len(row) > 2 {
			if example := strings.TrimSpace(row[2]); example != "" {
				e.ExampleSentence = &example
			}
		}
		entries = append(entries, e)
	}
	return entries
}
