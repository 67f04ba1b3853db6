package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"bemviver/internal/core"
)

func TestWriteExcel(t *testing.T) {
	start, end := testPeriod(t)
	b := Assemble(nil, []core.Activity{
		{ID: 1, UserID: 1, Type: "caminhada", DurationMinutes: 30, Intensity: core.Light, Date: core.NewDate(2024, 6, 10)},
		{ID: 2, UserID: 1, Type: "hidroginástica", DurationMinutes: 45, Intensity: core.Intense, Date: core.NewDate(2024, 6, 12)},
	}, start, end)

	var buf bytes.Buffer
	if err := WriteExcel(b, &buf); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Atividades")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Data atividade" || rows[0][3] != "Duração (minutos)" {
		t.Fatalf("header mismatch: %v", rows[0])
	}
	if rows[1][2] != "caminhada" || rows[1][3] != "30" {
		t.Fatalf("first data row mismatch: %v", rows[1])
	}
	if rows[2][4] != "intensa" {
		t.Fatalf("intensity cell mismatch: %v", rows[2])
	}
}
