// Package pdftest builds minimal but structurally valid PDF files for tests:
// real xref offsets, one content stream per page, uncompressed streams so
// content-stream text extraction sees the Tj operators directly.
package pdftest

import (
	"fmt"
	"strings"
)

// Build returns a PDF with one page per element of pageTexts.
func Build(pageTexts ...string) []byte {
	n := len(pageTexts)

	// Object layout: 1 catalog, 2 pages, then per page i (0-based):
	// 3+2i page dict, 4+2i content stream. Font object last.
	fontObj := 3 + 2*n
	size := fontObj + 1

	var b strings.Builder
	offsets := make([]int, size)

	b.WriteString("%PDF-1.4\n")

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	var kids []string
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}
	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n)

	for i, text := range pageTexts {
		pageNum := 3 + 2*i
		contentNum := 4 + 2*i

		offsets[pageNum] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n",
			pageNum, contentNum, fontObj)

		stream := buildTextStream(text)
		offsets[contentNum] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream)
	}

	offsets[fontObj] = b.Len()
	fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontObj)

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", size)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i < size; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	return []byte(b.String())
}

// buildTextStream shows each input line as a separate Tj operation.
func buildTextStream(text string) string {
	var sb strings.Builder
	sb.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString("(")
		sb.WriteString(escape(line))
		sb.WriteString(") Tj\n0 -14 Td\n")
	}
	sb.WriteString("ET")
	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
