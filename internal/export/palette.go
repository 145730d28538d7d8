package export

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// ErrEmptyGrid blocks export of a grid with no rows. No partial or empty
// artifact is ever produced.
var ErrEmptyGrid = errors.New("timesheet grid is empty")

// screenPalette is the fill set the portal shows on screen. The export
// renderers substitute the brightened printPalette instead: printed on
// paper the screen tones swallow the cell text.
var screenPalette = map[domain.CellColor]string{
	domain.ColorYellow:    "#F4D03F",
	domain.ColorRed:       "#E74C3C",
	domain.ColorBlue:      "#5DADE2",
	domain.ColorGreen:     "#58D68D",
	domain.ColorHighlight: "#F5B041",
}

var printPalette = map[domain.CellColor]string{
	domain.ColorYellow:    "#FFF59D",
	domain.ColorRed:       "#EF9A9A",
	domain.ColorBlue:      "#90CAF9",
	domain.ColorGreen:     "#A5D6A7",
	domain.ColorHighlight: "#FFE0B2",
}

// ScreenHex returns the on-screen fill for a cell color.
func ScreenHex(c domain.CellColor) (string, bool) {
	hex, ok := screenPalette[c]
	return hex, ok
}

func printHex(c domain.CellColor) (string, bool) {
	hex, ok := printPalette[c]
	return hex, ok
}

func printRGB(c domain.CellColor) (r, g, b int, ok bool) {
	hex, ok := printPalette[c]
	if !ok {
		return 0, 0, 0, false
	}
	rv, _ := strconv.ParseUint(hex[1:3], 16, 8)
	gv, _ := strconv.ParseUint(hex[3:5], 16, 8)
	bv, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return int(rv), int(gv), int(bv), true
}

var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// MonthName returns the Turkish name of a month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// ExcelFilename names the spreadsheet artifact for a grid.
func ExcelFilename(g domain.Grid) string {
	return fmt.Sprintf("puantaj_%s_%s_%d.xlsx", g.Region.Name, MonthName(g.Month.Month()), g.Month.Year())
}

// PDFFilename names the document artifact. The PDF pipeline is Latin-1
// throughout, so the name goes through the same substitution table as the
// document text.
func PDFFilename(g domain.Grid) string {
	return Transliterate(fmt.Sprintf("puantaj_%s_%s_%d.pdf", g.Region.Name, MonthName(g.Month.Month()), g.Month.Year()))
}
