package reports

import (
	"bytes"
	"encoding/base64"
	"strings"
	"time"

	"mecda-academy/app/models"

	"github.com/jung-kurt/gofpdf"
)

// decodeLogo extracts the image bytes and type from a base64 data URI
// logo. Remote URLs cannot be embedded and return ok=false.
func decodeLogo(logoURL string) (data []byte, imageType string, ok bool) {
	if !strings.HasPrefix(logoURL, "data:image/") {
		return nil, "", false
	}
	rest := strings.TrimPrefix(logoURL, "data:image/")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", false
	}
	imageType = strings.ToUpper(rest[:sep])
	if imageType != "PNG" && imageType != "JPG" && imageType != "JPEG" {
		return nil, "", false
	}
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return data, imageType, true
}

// RenderPDF produces the branded, watermarked PDF artifact for a
// shaped report.
func RenderPDF(academy *models.AcademyInfo, r Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)

	logoData, logoType, hasLogo := decodeLogo(academy.LogoURL)
	if hasLogo {
		opts := gofpdf.ImageOptions{ImageType: logoType}
		pdf.RegisterImageOptionsReader("academy-logo", opts, bytes.NewReader(logoData))
	}

	// Watermark on every page: the academy logo at low alpha, or a
	// faint academy-name banner when no embeddable logo exists.
	pdf.SetHeaderFunc(func() {
		pdf.SetAlpha(0.08, "Normal")
		if hasLogo {
			opts := gofpdf.ImageOptions{ImageType: logoType}
			pdf.ImageOptions("academy-logo", 55, 100, 100, 0, false, opts, 0, "")
		} else {
			pdf.SetFont("Helvetica", "B", 50)
			pdf.SetTextColor(63, 81, 181)
			pdf.TransformBegin()
			pdf.TransformRotate(45, 105, 150)
			pdf.Text(30, 155, academy.Name)
			pdf.TransformEnd()
		}
		pdf.SetAlpha(1, "Normal")
	})

	pdf.AddPage()

	// Branding block.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(63, 81, 181)
	pdf.CellFormat(0, 10, academy.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	contactLine := academy.Address + " | Contact: " + academy.Contact + " | Email: " + academy.Email
	pdf.CellFormat(0, 6, contactLine, "", 1, "C", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, 32, 190, 32)
	pdf.Ln(8)

	// Report title and timestamp.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 9, r.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(r.Headers) == 0 {
		var buf bytes.Buffer
		err := pdf.Output(&buf)
		return buf.Bytes(), err
	}

	colWidth := 190.0 / float64(len(r.Headers))

	// Header row.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(63, 81, 181)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range r.Headers {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Striped data rows.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(33, 33, 33)
	for i, row := range r.Rows {
		if i%2 == 1 {
			pdf.SetFillColor(245, 247, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j := 0; j < len(r.Headers); j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
