package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"trends-server/models"
)

// WriteCSV serializes the combined series: one row per timestamp with the
// date as row label, one column per keyword. Non-finite values (undefined
// ratios never reach here, but rescales of junk data could) are written
// verbatim, e.g. "+Inf".
func WriteCSV(series models.CombinedSeries, keywords []string, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append([]string{"date"}, keywords...)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(keywords)+1)
	for _, point := range series {
		record[0] = point.Date.Format(models.DateLayout)
		for i, keyword := range keywords {
			record[i+1] = strconv.FormatFloat(point.Values[keyword], 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the combined series to a CSV file.
func ExportCSV(series models.CombinedSeries, keywords []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(series, keywords, f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
