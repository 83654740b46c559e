package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"withdrawal-report/internal/models"
	"withdrawal-report/internal/workbook"

	"github.com/stretchr/testify/suite"
)

type SampleGeneratorTestSuite struct {
	suite.Suite
	start time.Time
	end   time.Time
}

func TestSampleGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(SampleGeneratorTestSuite))
}

func (s *SampleGeneratorTestSuite) SetupTest() {
	s.start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
}

func (s *SampleGeneratorTestSuite) TestGenerate_RowsIngestCleanly() {
	gen := NewSampleGenerator(42, 5)

	rows := gen.Generate(s.start, s.end, 60)

	s.Require().Len(rows, 60)
	dataset, err := NewRowIngestor().Ingest(rows, WithColumns(gen.Columns()))
	s.Require().NoError(err)
	s.Equal(60, dataset.Len())
	s.Zero(dataset.DroppedRows)
	s.LessOrEqual(len(dataset.Merchants), 5)
	for _, record := range dataset.Records {
		s.True(record.HasDate())
		s.GreaterOrEqual(record.DateOnly, "2024-01-01")
		s.LessOrEqual(record.DateOnly, "2024-03-31")
		s.True(cellDecimal(record.Row.WithdrawalAmount).IsPositive())
		s.False(cellDecimal(record.Row.WithdrawalFees).IsNegative())
	}
}

func (s *SampleGeneratorTestSuite) TestGenerate_RotatesDateForms() {
	rows := NewSampleGenerator(7, 3).Generate(s.start, s.end, 3)

	s.IsType("", rows[0].Date)
	s.True(IsCanonicalDate(rows[0].Date.(string)))
	s.IsType("", rows[1].Date)
	s.False(IsCanonicalDate(rows[1].Date.(string)))
	s.IsType(float64(0), rows[2].Date)

	for _, row := range rows {
		date, ok := NormalizeDate(row.Date)
		s.True(ok)
		s.GreaterOrEqual(date, "2024-01-01")
		s.LessOrEqual(date, "2024-03-31")
	}
}

func (s *SampleGeneratorTestSuite) TestGenerate_DatesSurviveXLSXRoundTrip() {
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	gen := NewSampleGenerator(11, 2)
	rows := gen.Generate(day, day, 6)

	path := filepath.Join(s.T().TempDir(), "sample.xlsx")
	s.Require().NoError(workbook.NewWriter().WriteRows(path, workbook.TransactionsSheet, gen.Columns(), rows))

	file, err := os.Open(path)
	s.Require().NoError(err)
	defer file.Close()

	columns, readRows, err := workbook.NewReader().Read(path, file)
	s.Require().NoError(err)
	s.Require().Len(readRows, len(rows))

	dataset, err := NewRowIngestor().Ingest(readRows, WithColumns(columns))
	s.Require().NoError(err)
	s.Require().Equal(len(rows), dataset.Len())
	for i, record := range dataset.Records {
		s.Equal("2024-01-15", record.DateOnly, "row %d generated as %#v", i, rows[i].Date)
	}
}

func (s *SampleGeneratorTestSuite) TestGenerate_SameSeedSameRows() {
	first := NewSampleGenerator(99, 4).Generate(s.start, s.end, 10)
	second := NewSampleGenerator(99, 4).Generate(s.start, s.end, 10)

	s.Equal(first, second)
}

func (s *SampleGeneratorTestSuite) TestGenerate_SwappedRange() {
	rows := NewSampleGenerator(3, 2).Generate(s.end, s.start, 5)

	s.Len(rows, 5)
}

func (s *SampleGeneratorTestSuite) TestNewSampleGenerator_CapsMerchantCount() {
	s.Len(NewSampleGenerator(1, 0).Merchants(), len(sampleMerchantPool()))
	s.Len(NewSampleGenerator(1, 1000).Merchants(), len(sampleMerchantPool()))
	s.Len(NewSampleGenerator(1, 3).Merchants(), 3)
}

func (s *SampleGeneratorTestSuite) TestColumns_IncludeKnownColumns() {
	columns := NewSampleGenerator(1, 1).Columns()

	s.Contains(columns, models.ColumnDate)
	s.Contains(columns, models.ColumnMerchantName)
	s.Contains(columns, models.ColumnWithdrawalAmount)
	s.Contains(columns, models.ColumnWithdrawalFees)
}
