// Package export serializes the catalog for download. The CSV layout matches
// the storefront's original export byte for byte: a fixed header, name and
// description quoted, everything else bare.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"boutique/internal/domain/entity"
)

// Header is the fixed CSV header row.
const Header = "ID,Name,Category,Price,Stock,Description"

// FileName derives the download filename for an export taken at the given time.
func FileName(now time.Time) string {
	return fmt.Sprintf("inventory_export_%s.csv", now.UTC().Format("2006-01-02"))
}

// WriteCSV writes the catalog to w, one row per product in catalog order.
func WriteCSV(w io.Writer, products []entity.Product) error {
	var sb strings.Builder
	sb.WriteString(Header)
	for _, p := range products {
		sb.WriteByte('\n')
		sb.WriteString(row(&p))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write csv")
	}

	return nil
}

// row renders one product line. Prices drop trailing zeros so whole amounts
// export as integers, matching the original output.
func row(p *entity.Product) string {
	fields := []string{
		strconv.FormatInt(p.ID, 10),
		`"` + p.Name + `"`,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		strconv.Itoa(p.Stock),
		`"` + p.Description + `"`,
	}

	return strings.Join(fields, ",")
}
