// Package export renders filtered project and talent views as spreadsheets.
package export

import (
	"fmt"
	"strings"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	ProjectSheet = "Projects"
	TalentSheet  = "Talents"
)

var projectHeaders = []string{
	"ID", "Project Name", "Keywords", "Extended Terms", "Project Content",
	"Signing Date", "End Date", "Amount (10k)", "Construction Unit",
	"Contact Person", "Contact Phone",
}

var projectWidths = []float64{38, 36, 30, 40, 60, 14, 14, 14, 32, 18, 18}

var talentHeaders = []string{
	"ID", "Name", "Expertise", "Contact Phone", "Social Security",
	"Last Update", "Related Projects",
}

var talentWidths = []float64{38, 22, 40, 18, 16, 14, 50}

// Projects builds a workbook with one row per project plus a total row.
func Projects(projects []project.Project) (*excelize.File, error) {
	f, err := newSheet(ProjectSheet, projectHeaders, projectWidths)
	if err != nil {
		return nil, err
	}

	var total float64
	for i, p := range projects {
		row := []any{
			p.ID, p.ProjectName, p.Keywords, p.ExtendedTerms, p.ProjectContent,
			p.ContractSigningDate, p.ProjectEndDate, p.ContractAmount, p.ConstructionUnit,
			p.ContactPerson, p.ContactPhone,
		}
		if err := setRow(f, ProjectSheet, i+2, row); err != nil {
			return nil, err
		}
		total += p.ContractAmount
	}

	summaryRow := len(projects) + 2
	if err := setRow(f, ProjectSheet, summaryRow, []any{"Total", fmt.Sprintf("%d projects", len(projects))}); err != nil {
		return nil, err
	}
	amountCell, err := excelize.CoordinatesToCellName(8, summaryRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(ProjectSheet, amountCell, total); err != nil {
		return nil, err
	}
	if err := styleRow(f, ProjectSheet, summaryRow, len(projectHeaders), &excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return nil, err
	}

	return f, nil
}

// Talents builds a workbook with one row per talent.
func Talents(talents []talent.Talent) (*excelize.File, error) {
	f, err := newSheet(TalentSheet, talentHeaders, talentWidths)
	if err != nil {
		return nil, err
	}

	for i, t := range talents {
		row := []any{
			t.ID, t.Name, t.Expertise, t.ContactPhone, string(t.SocialSecurityStatus),
			t.LastUpdateDate, strings.Join(t.RelatedProjects, "; "),
		}
		if err := setRow(f, TalentSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func newSheet(name string, headers []string, widths []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := setRow(f, name, 1, header); err != nil {
		return nil, err
	}
	if err := styleRow(f, name, 1, len(headers), &excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	}); err != nil {
		return nil, err
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, col, col, w); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, cols int, style *excelize.Style) error {
	id, err := f.NewStyle(style)
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, id)
}
