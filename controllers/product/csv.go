package productControllers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LorinczNorbertAttila/L-and-E/models"
)

// Columns of the supplier CSV feed.
const (
	colArticleCode = "cod_art"
	colName        = "denumire"
	colPrice       = "valoare"
	colStock       = "disponibil"
	colType        = "tip"
	colImageURL    = "imageUrl"
)

var massPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(ml|l|gr|kg)`)

// extractMass pulls a unit amount like "0.5 L" out of a product name.
// Returns nil when the name carries no recognizable unit.
func extractMass(name string) *string {
	match := massPattern.FindStringSubmatch(name)
	if match == nil {
		return nil
	}
	mass := strings.ReplaceAll(match[1], ",", ".") + " " + strings.ToUpper(match[2])
	return &mass
}

// capitalizeName normalizes supplier names: first letter upper, rest lower.
func capitalizeName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// parseProductsCSV reads the supplier feed. Rows without an article code are
// skipped; malformed numbers become zero values, same as the frontend
// importer always tolerated.
func parseProductsCSV(r io.Reader) ([]models.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var products []models.Product
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id := field(row, colArticleCode)
		if id == "" {
			continue
		}
		name := field(row, colName)
		price, _ := strconv.ParseFloat(field(row, colPrice), 64)
		quantity, _ := strconv.ParseFloat(field(row, colStock), 64)
		categoryType, _ := strconv.Atoi(field(row, colType))

		products = append(products, models.Product{
			ID:       id,
			Name:     capitalizeName(name),
			Price:    price,
			Quantity: int(quantity),
			Mass:     extractMass(name),
			Type:     categoryType,
			ImageURL: field(row, colImageURL),
		})
	}
	return products, nil
}

// POST /api/products/process-file
// Parses the uploaded supplier CSV and returns the products it describes.
// Nothing is written; /upload does the actual merge.
func ProcessFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token or file"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV read error"})
			return
		}
		defer file.Close()

		products, err := parseProductsCSV(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV read error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}
