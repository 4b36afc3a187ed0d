package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/xuri/excelize/v2"
)

// ExtractDataBlock reads the label/count/share rows below the data block
// header of a sheet. It stops at the first empty row. A sheet without the
// header yields no rows and no error.
func ExtractDataBlock(f *excelize.File, sheetName string) ([]models.DataRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || !isHeader(rows[0]) {
		return nil, nil
	}

	var result []models.DataRow
	for rowIdx, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			break
		}
		rowNum := rowIdx + 2 // 1-based, after the header

		dr := models.DataRow{Label: row[0]}
		if len(row) > 1 {
			count, ok := parseValue(row[1]).(int64)
			if !ok {
				return nil, fmt.Errorf("row %d: count %q is not a whole number", rowNum, row[1])
			}
			dr.Count = int(count)
		}
		if len(row) > 2 {
			switch v := parseValue(row[2]).(type) {
			case int64:
				dr.Share = float64(v)
			case float64:
				dr.Share = v
			default:
				return nil, fmt.Errorf("row %d: share %q is not a number", rowNum, row[2])
			}
		}
		result = append(result, dr)
	}

	return result, nil
}

func isHeader(row []string) bool {
	if len(row) < len(models.DataBlockHeader) {
		return false
	}
	for i, h := range models.DataBlockHeader {
		if row[i] != h {
			return false
		}
	}
	return true
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
