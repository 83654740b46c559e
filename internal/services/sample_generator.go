package services

import (
	"time"

	"withdrawal-report/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	ColumnTransactionID = "Transaction ID"
	ColumnStatus        = "Status"

	minSampleAmount = 5.0
	maxSampleAmount = 2500.0
	minFeePercent   = 0.5
	maxFeePercent   = 3.0
)

var sampleStatuses = []string{"Completed", "Completed", "Completed", "Pending", "Reversed"}

// SampleGenerator produces withdrawal exports shaped like the ones operators
// upload. Dates rotate between YYYY-MM-DD text, DD/MM/YYYY text and
// spreadsheet serial numbers so every normalization path is exercised. Each
// form reads back as the same day after a round trip through an xlsx file.
type SampleGenerator struct {
	faker     *gofakeit.Faker
	merchants []string
}

// NewSampleGenerator creates a generator. A seed of 0 picks a random seed.
// merchantCount is capped at the size of the built-in merchant pool.
func NewSampleGenerator(seed uint64, merchantCount int) *SampleGenerator {
	pool := sampleMerchantPool()
	if merchantCount <= 0 || merchantCount > len(pool) {
		merchantCount = len(pool)
	}

	faker := gofakeit.New(seed)
	faker.ShuffleAnySlice(pool)

	return &SampleGenerator{
		faker:     faker,
		merchants: pool[:merchantCount],
	}
}

func sampleMerchantPool() []string {
	return []string{
		"Walmart Supercenter",
		"Kroger",
		"Whole Foods Market",
		"Trader Joe's",
		"Costco Wholesale",
		"Starbucks",
		"Chipotle Mexican Grill",
		"Panera Bread",
		"Uber",
		"Lyft",
		"Shell",
		"Amtrak",
		"Amazon.com",
		"Best Buy",
		"Home Depot",
		"IKEA",
		"Netflix",
		"Spotify",
		"Verizon Wireless",
		"CVS Pharmacy",
		"Delta Air Lines",
		"Marriott Hotels",
	}
}

// Merchants returns the merchants rows are drawn from
func (g *SampleGenerator) Merchants() []string {
	return append([]string(nil), g.merchants...)
}

// Columns returns the header of a generated export
func (g *SampleGenerator) Columns() []string {
	return []string{
		ColumnTransactionID,
		models.ColumnDate,
		models.ColumnMerchantName,
		models.ColumnWithdrawalAmount,
		models.ColumnWithdrawalFees,
		ColumnStatus,
	}
}

// Generate returns count rows dated between start and end inclusive
func (g *SampleGenerator) Generate(start, end time.Time, count int) []models.RawRow {
	if end.Before(start) {
		start, end = end, start
	}
	start = truncateDay(start)
	end = truncateDay(end).Add(24*time.Hour - time.Second)

	rows := make([]models.RawRow, 0, count)
	for i := 0; i < count; i++ {
		amount := decimal.NewFromFloat(g.faker.Float64Range(minSampleAmount, maxSampleAmount)).Round(2)
		feePercent := decimal.NewFromFloat(g.faker.Float64Range(minFeePercent, maxFeePercent))
		fee := amount.Mul(feePercent).Div(decimal.NewFromInt(100)).Round(2)

		rows = append(rows, models.RawRow{
			Date:             sampleDateCell(truncateDay(g.faker.DateRange(start, end)), i),
			MerchantName:     g.faker.RandomString(g.merchants),
			WithdrawalAmount: amount.InexactFloat64(),
			WithdrawalFees:   fee.InexactFloat64(),
			Extra: map[string]interface{}{
				ColumnTransactionID: g.faker.UUID(),
				ColumnStatus:        g.faker.RandomString(sampleStatuses),
			},
		})
	}
	return rows
}

// sampleDateCell renders day in one of the three cell forms found in real
// exports. A time.Time is never returned: excelize stores it as a serial one
// day ahead of the reading applied to uploaded serials.
func sampleDateCell(day time.Time, idx int) interface{} {
	switch idx % 3 {
	case 0:
		return day.Format(CanonicalDateLayout)
	case 1:
		return day.Format("02/01/2006")
	default:
		return day.Sub(serialEpoch).Hours()/24 + 1
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
