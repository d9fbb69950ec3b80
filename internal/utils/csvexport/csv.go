package csvexport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/polifund_ledger/internal/core/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	flushEvery = 200
	bufferSize = 32 * 1024
)

// ContentType is the response content type of exports.
const ContentType = "text/csv; charset=utf-8"

// FileName returns "<report-name>_<YYYY-MM-DD>.csv".
func FileName(kind domain.ReportKind, at time.Time) string {
	return fmt.Sprintf("%s_%s.csv", kind.FileBaseName(), at.Format("2006-01-02"))
}

// Write encodes report as UTF-8 CSV with a leading byte order mark, CRLF line
// endings and a header row.
func Write(w io.Writer, report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("csvexport: nil report")
	}
	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	buf := bufio.NewWriterSize(bom, bufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true

	if err := writer.Write(report.Columns); err != nil {
		return fmt.Errorf("csvexport: write header: %w", err)
	}
	for i, row := range report.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("csvexport: write row %d: %w", i+1, err)
		}
		if (i+1)%flushEvery == 0 {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return bom.Close()
}
