package services

import (
	"fmt"
	"strings"

	"github.com/alphadev-tn/stage_manager/models"
	"github.com/alphadev-tn/stage_manager/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportService bulk-creates etudiants from a spreadsheet. Row 1 is the
// header; every following row carries cin, name, email, dte_naiss, phone_nbr
// in that fixed column order.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportEtudiants reads the file and inserts one etudiant per data row,
// attached to classeID, inside a single transaction: either every row lands
// or none does, and the error names the spreadsheet row that failed.
func (s *ImportService) ImportEtudiants(filePath string, classeID uint) (int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("cannot read spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("cannot read spreadsheet: %w", err)
	}
	if len(rows) <= 1 {
		return 0, nil
	}

	count := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			rowNum := i + 2
			if len(row) == 0 {
				continue
			}

			etudiant := models.Etudiant{
				Cin:      cell(row, 0),
				Name:     cell(row, 1),
				Email:    cell(row, 2),
				ClasseID: &classeID,
			}
			if v := cell(row, 3); v != "" {
				if d, err := utils.ParseDate(v); err == nil {
					etudiant.DteNaiss = &d
				}
			}
			if v := cell(row, 4); v != "" {
				phone := v
				etudiant.PhoneNbr = &phone
			}

			if err := tx.Create(&etudiant).Error; err != nil {
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
