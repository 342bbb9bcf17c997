package infra

// pdf.go — Ranking report generation using go-pdf/fpdf.
// Produces an A4 table with position, team, zone, points and goals, ready to
// stream as a download or attach to an email.

import (
	"bytes"
	"fmt"
	"time"

	"superganaderia/internal/scoring"

	"github.com/go-pdf/fpdf"
)

// RankingPDF renders the ranking table to an in-memory PDF.
func RankingPDF(titulo string, filas []scoring.FilaRanking) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Súper Ganadería", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, titulo, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	colPos := contentW * 0.10
	colEquipo := contentW * 0.38
	colZona := contentW * 0.24
	colPuntos := contentW * 0.14
	colGoles := contentW * 0.14

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colPos, 7, "Pos", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colEquipo, 7, "Equipo", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colZona, 7, "Zona", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colPuntos, 7, "Puntos", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colGoles, 7, "Goles", "1", 1, "R", true, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, f := range filas {
		equipo := f.Equipo
		if len(equipo) > 36 {
			equipo = equipo[:35] + "…"
		}
		pdf.CellFormat(colPos, 6, fmt.Sprintf("%d", f.Posicion), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colEquipo, 6, equipo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colZona, 6, f.Zona, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colPuntos, 6, fmt.Sprintf("%d", f.Puntos), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colGoles, 6, fmt.Sprintf("%d", f.Goles), "1", 1, "R", false, 0, "")
	}

	if len(filas) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "Sin equipos registrados", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render ranking: %w", err)
	}
	return buf.Bytes(), nil
}
