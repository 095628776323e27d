package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/sbennell/Asset-System/internal/config"
	"github.com/sbennell/Asset-System/internal/models"
	"gorm.io/gorm"
)

// Label geometry in millimetres (62x29 thermal label stock).
const (
	labelWidth  = 62.0
	labelHeight = 29.0
	qrSize      = 18.0
	labelMargin = 2.0
)

// MaxLabelCopies bounds a single print job.
const MaxLabelCopies = 100

// LabelOptions is the fully-resolved set of display toggles for one label.
// Every field is a concrete boolean by the time a label is rendered.
type LabelOptions struct {
	ShowAssignedTo   bool `json:"show_assigned_to"`
	ShowModel        bool `json:"show_model"`
	ShowSerialNumber bool `json:"show_serial_number"`
}

// LabelOverrides are per-print toggles; nil fields fall back to the
// persisted defaults.
type LabelOverrides struct {
	ShowAssignedTo   *bool `json:"show_assigned_to" form:"show_assigned_to"`
	ShowModel        *bool `json:"show_model" form:"show_model"`
	ShowSerialNumber *bool `json:"show_serial_number" form:"show_serial_number"`
}

// ResolveLabelOptions merges per-print overrides over defaults. A present
// override wins; otherwise the default applies; when defaults have not been
// configured at all, everything is shown.
func ResolveLabelOptions(defaults *LabelOptions, ov LabelOverrides) LabelOptions {
	resolved := LabelOptions{ShowAssignedTo: true, ShowModel: true, ShowSerialNumber: true}
	if defaults != nil {
		resolved = *defaults
	}
	if ov.ShowAssignedTo != nil {
		resolved.ShowAssignedTo = *ov.ShowAssignedTo
	}
	if ov.ShowModel != nil {
		resolved.ShowModel = *ov.ShowModel
	}
	if ov.ShowSerialNumber != nil {
		resolved.ShowSerialNumber = *ov.ShowSerialNumber
	}
	return resolved
}

// ClampCopies bounds a copy count to [1, MaxLabelCopies]. Out-of-range
// values are clamped rather than rejected.
func ClampCopies(copies int) int {
	if copies < 1 {
		return 1
	}
	if copies > MaxLabelCopies {
		return MaxLabelCopies
	}
	return copies
}

// RenderLabelFields returns the text lines of a label in print order:
// assigned-to (if enabled and present), the item number (always),
// manufacturer+model (if enabled and present), serial number (if enabled
// and present), then the organization footer (independent of the per-print
// options).
func RenderLabelFields(asset *models.Asset, opts LabelOptions, orgName string) []string {
	var lines []string

	if opts.ShowAssignedTo && asset.AssignedTo != "" {
		lines = append(lines, asset.AssignedTo)
	}
	lines = append(lines, "Item:"+asset.ItemNumber)
	if opts.ShowModel && asset.Model != "" {
		line := asset.Model
		if asset.Manufacturer != nil && asset.Manufacturer.Name != "" {
			line = asset.Manufacturer.Name + " " + asset.Model
		}
		lines = append(lines, line)
	}
	if opts.ShowSerialNumber && asset.SerialNumber != "" {
		lines = append(lines, "S/N:"+asset.SerialNumber)
	}
	if orgName != "" {
		lines = append(lines, orgName)
	}

	return lines
}

type PrintResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LabelService renders QR asset labels and submits print jobs to the
// configured spool directory.
type LabelService struct {
	db       *gorm.DB
	settings *SettingService
	cfg      *config.LabelConfig
}

func NewLabelService(db *gorm.DB, cfg *config.LabelConfig) *LabelService {
	return &LabelService{
		db:       db,
		settings: NewSettingService(db),
		cfg:      cfg,
	}
}

// Defaults loads the persisted label display settings. Keys that were never
// set resolve to true.
func (s *LabelService) Defaults() LabelOptions {
	return LabelOptions{
		ShowAssignedTo:   s.settings.GetBool(models.SettingLabelShowAssignedTo, true),
		ShowModel:        s.settings.GetBool(models.SettingLabelShowModel, true),
		ShowSerialNumber: s.settings.GetBool(models.SettingLabelShowSerialNumber, true),
	}
}

// UpdateDefaults persists the present override fields as the new defaults.
func (s *LabelService) UpdateDefaults(ov *LabelOverrides) (LabelOptions, error) {
	if ov.ShowAssignedTo != nil {
		if err := s.settings.SetBool(models.SettingLabelShowAssignedTo, *ov.ShowAssignedTo); err != nil {
			return LabelOptions{}, err
		}
	}
	if ov.ShowModel != nil {
		if err := s.settings.SetBool(models.SettingLabelShowModel, *ov.ShowModel); err != nil {
			return LabelOptions{}, err
		}
	}
	if ov.ShowSerialNumber != nil {
		if err := s.settings.SetBool(models.SettingLabelShowSerialNumber, *ov.ShowSerialNumber); err != nil {
			return LabelOptions{}, err
		}
	}
	return s.Defaults(), nil
}

func (s *LabelService) loadAsset(id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("Manufacturer").First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Asset not found")
		}
		return nil, err
	}
	return &asset, nil
}

// qrContent is the URL encoded into the label's QR code.
func (s *LabelService) qrContent(asset *models.Asset) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/assets/" + asset.ID
}

// PreviewPNG returns the QR code for an asset as a PNG image.
func (s *LabelService) PreviewPNG(assetID string) ([]byte, error) {
	asset, err := s.loadAsset(assetID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(s.qrContent(asset), qrcode.Medium, 256)
}

// BuildPDF renders the label for an asset as a PDF, one page per copy.
func (s *LabelService) BuildPDF(assetID string, copies int, ov LabelOverrides) ([]byte, error) {
	asset, err := s.loadAsset(assetID)
	if err != nil {
		return nil, err
	}

	copies = ClampCopies(copies)
	defaults := s.Defaults()
	opts := ResolveLabelOptions(&defaults, ov)
	orgName, err := s.settings.Get(models.SettingOrganization)
	if err != nil {
		return nil, err
	}

	qrPNG, err := qrcode.Encode(s.qrContent(asset), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: labelWidth, Ht: labelHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	imgName := "qr-" + asset.ID
	pdf.RegisterImageOptionsReader(imgName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	body := RenderLabelFields(asset, opts, "")
	for i := 0; i < copies; i++ {
		pdf.AddPage()
		pdf.ImageOptions(imgName, labelMargin, labelMargin, qrSize, qrSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		textX := labelMargin + qrSize + 2
		textWidth := labelWidth - textX - labelMargin
		y := 3.5
		for j, line := range body {
			if j == 0 {
				pdf.SetFont("Helvetica", "B", 8)
			} else {
				pdf.SetFont("Helvetica", "", 7)
			}
			pdf.SetXY(textX, y)
			pdf.CellFormat(textWidth, 3.5, line, "", 0, "L", false, 0, "")
			y += 4
		}

		if orgName != "" {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetXY(labelMargin, labelHeight-5)
			pdf.CellFormat(labelWidth-2*labelMargin, 3, orgName, "T", 0, "C", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrintLabel renders the label and drops it into the print spool directory
// for the label printer agent. copies outside [1, MaxLabelCopies] are
// clamped, never rejected.
func (s *LabelService) PrintLabel(assetID string, copies int, ov LabelOverrides) (*PrintResult, error) {
	copies = ClampCopies(copies)

	pdfBytes, err := s.BuildPDF(assetID, copies, ov)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.SpoolDir, 0o755); err != nil {
		return nil, err
	}
	jobName := fmt.Sprintf("label-%s-%d.pdf", assetID, time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(s.cfg.SpoolDir, jobName), pdfBytes, 0o644); err != nil {
		return nil, err
	}

	plural := ""
	if copies != 1 {
		plural = "s"
	}
	return &PrintResult{
		Success: true,
		Message: fmt.Sprintf("Sent %d label%s to printer", copies, plural),
	}, nil
}
