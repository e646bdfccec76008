package acctbatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

var (
	tableHeaders = []string{"Account#", "First", "Last", "Email", "Present", "Avail"}
	tableWidths  = []int{12, 14, 14, 26, 10, 10}
)

func tableRule() string {
	n := 0
	for _, w := range tableWidths {
		n += w
	}
	return strings.Repeat("-", n)
}

func writeTable(w io.Writer, accts []Account, decimals int32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-12s%-14s%-14s%-26s%10s%10s\n",
		tableHeaders[0], tableHeaders[1], tableHeaders[2], tableHeaders[3], tableHeaders[4], tableHeaders[5])
	fmt.Fprintln(bw, tableRule())
	for i := range accts {
		a := &accts[i]
		fmt.Fprintf(bw, "%-12s%-14s%-14s%-26s%10s%10s\n",
			a.AcctNo(), a.FirstName(), a.LastName(), a.Email(),
			a.Present().StringFixed(decimals), a.Available().StringFixed(decimals))
	}
	return bw.Flush()
}

// RenderAccounts prints the ledger as a fixed-width table.
func RenderAccounts(w io.Writer, accts []Account, decimals int32) error {
	if len(accts) == 0 {
		_, err := io.WriteString(w, "No accounts.\n")
		return err
	}
	return writeTable(w, accts, decimals)
}

// RenderRejections prints each rejection line as written to the sink.
func RenderRejections(w io.Writer, recs []Rejection) error {
	if len(recs) == 0 {
		_, err := io.WriteString(w, "No invalid records.\n")
		return err
	}
	for _, r := range recs {
		if _, err := io.WriteString(w, r.Line()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteAccountsFile writes the table to path, replacing any previous file.
// The header is written even for an empty ledger.
func WriteAccountsFile(path string, accts []Account, decimals int32) error {
	return writeFile(path, func(w io.Writer) error {
		return writeTable(w, accts, decimals)
	})
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderStatementPDF renders the same table as a landscape A4 PDF. Pages
// break automatically.
func RenderStatementPDF(w io.Writer, accts []Account, decimals int32) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("New accounts", false)
	pdf.AddPage()

	// Courier 9pt is ~1.9mm per glyph; columns keep the text table's widths.
	const glyph, rowH = 2.2, 6.0
	pdf.SetFont("Courier", "B", 9)
	for i, h := range tableHeaders {
		align := "L"
		if i >= 4 {
			align = "R"
		}
		pdf.CellFormat(float64(tableWidths[i])*glyph, rowH, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(rowH)

	pdf.SetFont("Courier", "", 9)
	for i := range accts {
		a := &accts[i]
		cells := []string{
			a.AcctNo(), a.FirstName(), a.LastName(), a.Email(),
			a.Present().StringFixed(decimals), a.Available().StringFixed(decimals),
		}
		for j, c := range cells {
			align := "L"
			if j >= 4 {
				align = "R"
			}
			pdf.CellFormat(float64(tableWidths[j])*glyph, rowH, c, "", 0, align, false, 0, "")
		}
		pdf.Ln(rowH)
	}
	if len(accts) == 0 {
		pdf.CellFormat(0, rowH, "No accounts.", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// PrintFile copies the file at path to w line by line.
func PrintFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if _, err = fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
