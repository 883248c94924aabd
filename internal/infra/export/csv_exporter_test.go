package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/domain/entity"
)

func TestWriteCSV_ExactFormat(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Name: "Diamond Stud Earrings", Category: "Earrings", Price: 299, Stock: 10, Description: "Elegant diamond studs suitable for any occasion."},
		{ID: 2, Name: "Gold Chain Bracelet", Category: "Bracelet", Price: 150.5, Stock: 15, Description: "Classic gold chain bracelet."},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, products))

	want := "ID,Name,Category,Price,Stock,Description\n" +
		`1,"Diamond Stud Earrings",Earrings,299,10,"Elegant diamond studs suitable for any occasion."` + "\n" +
		`2,"Gold Chain Bracelet",Bracelet,150.5,15,"Classic gold chain bracelet."`
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyCatalogIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, Header, buf.String())
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 4, 5, 0, time.UTC)

	assert.Equal(t, "inventory_export_2026-08-28.csv", FileName(now))
}
