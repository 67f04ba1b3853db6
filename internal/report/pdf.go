package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Fixed footer of every PDF report, kept verbatim from the app's
// printable layout.
const pdfFooter = "Aplicativo alinhado à ODS 3 - Saúde e Bem-Estar. Incentivando a prática segura de atividades físicas para pessoas idosas."

// WritePDF renders the full bundle (header block plus activity table) as
// a printable document. Unlike the Excel renderer, an empty row set is
// allowed and produces an explicit placeholder line.
func WritePDF(b Bundle, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate the UTF-8 portuguese strings.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Bem Viver - Relatório de Atividades Físicas", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(30, 136, 229)
	pdf.CellFormat(0, 10, tr("Bem Viver - Relatório de Atividades Físicas"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	writeSection(pdf, tr, "Dados do usuário")
	pdf.SetFont("Arial", "", 11)
	if b.Header.HasUser {
		writeField(pdf, tr, "Nome", b.Header.Name)
		writeField(pdf, tr, "Idade", fmt.Sprintf("%d anos", b.Header.Age))
		writeField(pdf, tr, "Peso", fmt.Sprintf("%.1f kg", b.Header.WeightKg))
		writeField(pdf, tr, "Altura", fmt.Sprintf("%.2f m", b.Header.HeightM))
		if b.Header.HealthNotes != "" {
			writeField(pdf, tr, "Observações de saúde", b.Header.HealthNotes)
		}
	} else {
		pdf.CellFormat(0, 7, tr("Nenhum usuário cadastrado."), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	writeSection(pdf, tr, "Período analisado")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(b.Header.PeriodStart+" até "+b.Header.PeriodEnd), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeSection(pdf, tr, "Atividades registradas")
	if len(b.Rows) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, tr("Nenhuma atividade registrada no período."), "", 1, "L", false, 0, "")
	} else {
		writeTable(pdf, tr, b.Rows)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(119, 119, 119)
	pdf.MultiCell(0, 4, tr(pdfFooter), "", "C", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func writeField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(50, 7, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, rows []Row) {
	widths := []float64{40, 60, 40, 45}
	headers := []string{"Data", "Atividade", "Duração", "Intensidade"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		cells := []string{r.Date, r.Type, r.DurationText(), r.Intensity}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
