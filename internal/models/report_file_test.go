package models

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ReportFileTestSuite is the test suite for the ReportFile and IngestionRun models
type ReportFileTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *ReportFileTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&ReportFile{}, &IngestionRun{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *ReportFileTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestReportFileTestSuite runs the test suite
func TestReportFileTestSuite(t *testing.T) {
	suite.Run(t, new(ReportFileTestSuite))
}

func (s *ReportFileTestSuite) newReport() *ReportFile {
	return &ReportFile{
		DatasetID:        uuid.New(),
		FileName:         gofakeit.Word() + ".xlsx",
		Path:             "/tmp/exports/" + uuid.NewString() + ".xlsx",
		StartDate:        "2024-01-01",
		EndDate:          "2024-01-31",
		RatePercent:      decimal.NewFromFloat(2.5),
		MerchantCount:    2,
		TransactionCount: 10,
		TotalWithdrawal:  decimal.NewFromFloat(1234.56),
		ExpiresAt:        time.Now().Add(time.Hour),
	}
}

func (s *ReportFileTestSuite) TestReportFile_BeforeCreate_GeneratesIDAndTimestamp() {
	report := s.newReport()

	err := s.db.Create(report).Error
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, report.ID)
	assert.False(s.T(), report.CreatedAt.IsZero())
}

func (s *ReportFileTestSuite) TestReportFile_RoundTripKeepsDecimals() {
	report := s.newReport()
	require.NoError(s.T(), s.db.Create(report).Error)

	var loaded ReportFile
	require.NoError(s.T(), s.db.First(&loaded, "id = ?", report.ID).Error)
	assert.True(s.T(), report.TotalWithdrawal.Equal(loaded.TotalWithdrawal))
	assert.True(s.T(), report.RatePercent.Equal(loaded.RatePercent))
}

func (s *ReportFileTestSuite) TestReportFile_Validate() {
	testCases := []struct {
		name   string
		mutate func(r *ReportFile)
		err    error
	}{
		{"missing path", func(r *ReportFile) { r.Path = "" }, ErrReportPathRequired},
		{"reversed range", func(r *ReportFile) { r.StartDate, r.EndDate = "2024-02-01", "2024-01-01" }, ErrReportDateRange},
		{"negative rate", func(r *ReportFile) { r.RatePercent = decimal.NewFromInt(-1) }, ErrReportRateOutOfRange},
		{"rate above 100", func(r *ReportFile) { r.RatePercent = decimal.NewFromFloat(100.01) }, ErrReportRateOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			report := s.newReport()
			tc.mutate(report)

			err := s.db.Create(report).Error
			assert.True(s.T(), errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
		})
	}
}

func (s *ReportFileTestSuite) TestReportFile_IsExpired() {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := &ReportFile{ExpiresAt: now}

	assert.True(s.T(), report.IsExpired(now))
	assert.True(s.T(), report.IsExpired(now.Add(time.Second)))
	assert.False(s.T(), report.IsExpired(now.Add(-time.Second)))
	assert.False(s.T(), (&ReportFile{}).IsExpired(now))
}

func (s *ReportFileTestSuite) TestIngestionRun_DefaultsAndFailure() {
	run := &IngestionRun{SourceName: "export.xlsx", TotalRows: 3}
	require.NoError(s.T(), s.db.Create(run).Error)
	assert.Equal(s.T(), IngestionStatusSucceeded, run.Status)
	assert.NotEqual(s.T(), uuid.Nil, run.ID)

	failed := &IngestionRun{SourceName: "empty.xlsx"}
	failed.MarkFailed(errors.New("no data"))
	require.NoError(s.T(), s.db.Create(failed).Error)
	assert.Equal(s.T(), IngestionStatusFailed, failed.Status)
	require.NotNil(s.T(), failed.ErrorMessage)
	assert.Equal(s.T(), "no data", *failed.ErrorMessage)
}
