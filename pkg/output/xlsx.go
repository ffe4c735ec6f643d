package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ccollicutt/outstat/pkg/extract"
)

// Column widths of the spreadsheet.
const (
	widthDefault    = 12
	widthStatus     = 30
	widthCompletion = 18

	// filterColumns is how many leading columns get an autofilter.
	filterColumns = 6
)

// XLSXFormatter writes the table as a styled Excel workbook.
type XLSXFormatter struct {
	opts FormatOptions
}

// NewXLSXFormatter creates a new spreadsheet formatter with the given options.
func NewXLSXFormatter(opts FormatOptions) *XLSXFormatter {
	return &XLSXFormatter{opts: opts}
}

// Name returns the format name.
func (f *XLSXFormatter) Name() string {
	return "xlsx"
}

// xlsxStyles holds the style IDs registered in a workbook.
type xlsxStyles struct {
	header  int
	number  int
	precise int
	date    int
}

// Format renders the result as a single-sheet workbook. The reservoir column
// is hidden for single-reservoir models.
func (f *XLSXFormatter) Format(ctx context.Context, result *extract.Result, w io.Writer) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	styles, err := f.registerStyles(book)
	if err != nil {
		return err
	}

	for c, col := range extract.Header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(SheetName, cell, col.Name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for r, row := range result.Rows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := f.writeRow(book, r+2, row); err != nil {
			return fmt.Errorf("writing row %s: %w", row.Well, err)
		}
	}

	if err := f.layoutColumns(book, styles, len(result.Rows), result.MultiReservoir()); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(filterColumns)
	if err != nil {
		return err
	}
	filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(result.Rows)+1)
	if err := book.AutoFilter(SheetName, filterRange, nil); err != nil {
		return fmt.Errorf("adding autofilter: %w", err)
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (f *XLSXFormatter) registerStyles(book *excelize.File) (*xlsxStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 2},
		{Type: "top", Color: "000000", Style: 2},
		{Type: "right", Color: "000000", Style: 2},
		{Type: "bottom", Color: "000000", Style: 2},
	}

	header, err := book.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D7E4BC"}},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	numberFmt := decimalFormat(f.opts.Precision)
	number, err := book.NewStyle(&excelize.Style{CustomNumFmt: &numberFmt})
	if err != nil {
		return nil, fmt.Errorf("creating number style: %w", err)
	}

	// Water cut is a fraction and gets two more decimals
	preciseFmt := decimalFormat(f.opts.Precision + 2)
	precise, err := book.NewStyle(&excelize.Style{CustomNumFmt: &preciseFmt})
	if err != nil {
		return nil, fmt.Errorf("creating number style: %w", err)
	}

	dateFmt := "dd-mmm-yyyy"
	date, err := book.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("creating date style: %w", err)
	}

	return &xlsxStyles{header: header, number: number, precise: precise, date: date}, nil
}

func (f *XLSXFormatter) writeRow(book *excelize.File, r int, row *extract.Row) error {
	for c, col := range extract.Header {
		cell, err := excelize.CoordinatesToCellName(c+1, r)
		if err != nil {
			return err
		}

		var value interface{}
		switch {
		case col.Name == extract.ColReservoir:
			value = row.Reservoir
		case col.Name == extract.ColWell:
			value = row.Well
		case col.Name == extract.ColTime:
			value = row.Time
		case col.Kind == extract.KindDate:
			if row.Date.IsZero() {
				continue
			}
			value = row.Date
		case col.Kind == extract.KindNumber:
			v, ok := row.Number(col.Name)
			if !ok {
				continue
			}
			value = v
		default:
			value = row.Text[col.Name]
		}

		if err := book.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// layoutColumns sets widths, number formats and visibility of every column.
func (f *XLSXFormatter) layoutColumns(book *excelize.File, styles *xlsxStyles, rows int, multiReservoir bool) error {
	for c, col := range extract.Header {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}

		width := float64(widthDefault)
		style := 0
		switch {
		case strings.HasPrefix(col.Name, "STATUS"):
			width = widthStatus
		case col.Name == extract.ColFirstCompletion:
			width = widthCompletion
		case col.Name == extract.ColWCUT:
			style = styles.precise
		case col.Kind == extract.KindDate:
			style = styles.date
		case col.Kind == extract.KindNumber && col.Name != extract.ColTime:
			style = styles.number
		}

		if err := book.SetColWidth(SheetName, name, name, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col.Name, err)
		}
		if style != 0 && rows > 0 {
			if err := book.SetCellStyle(SheetName, fmt.Sprintf("%s2", name), fmt.Sprintf("%s%d", name, rows+1), style); err != nil {
				return fmt.Errorf("styling column %s: %w", col.Name, err)
			}
		}
		if err := book.SetCellStyle(SheetName, name+"1", name+"1", styles.header); err != nil {
			return fmt.Errorf("styling header %s: %w", col.Name, err)
		}
	}

	if !multiReservoir {
		if err := book.SetColVisible(SheetName, "A", false); err != nil {
			return fmt.Errorf("hiding reservoir column: %w", err)
		}
	}
	return nil
}

// decimalFormat returns an Excel number format with the given decimals.
func decimalFormat(precision int) string {
	if precision <= 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", precision)
}
