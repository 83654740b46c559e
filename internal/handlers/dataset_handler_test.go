package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"withdrawal-report/internal/models"
	"withdrawal-report/internal/services"
	"withdrawal-report/internal/services/service_mocks"
	"withdrawal-report/internal/workbook"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DatasetHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockReportServiceInterface
	handler     *DatasetHandler
}

func TestDatasetHandlerSuite(t *testing.T) {
	suite.Run(t, new(DatasetHandlerTestSuite))
}

func (s *DatasetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewDatasetHandler(s.mockService)
}

func (s *DatasetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DatasetHandlerTestSuite) uploadRequest(field, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-upload")
	return c, rec
}

func (s *DatasetHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		ID:          uuid.New(),
		SourceName:  "march.csv",
		Columns:     []string{"Date", "Merchant Name", "Withdrawal Amount", "Withdrawal Fees"},
		Records:     make([]models.Record, 2),
		Merchants:   []string{"Acme", "Globex"},
		TotalRows:   3,
		DroppedRows: 1,
		LoadedAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *DatasetHandlerTestSuite) TestUploadDataset_Success() {
	content := []byte("Date,Merchant Name,Withdrawal Amount,Withdrawal Fees\n2024-03-01,Acme,100,1\n")
	c, rec := s.uploadRequest("file", "march.csv", content)

	s.mockService.EXPECT().
		LoadDataset(gomock.Any(), "march.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r io.Reader) (*models.Dataset, error) {
			data, err := io.ReadAll(r)
			s.Require().NoError(err)
			s.Equal(content, data)
			return sampleDataset(), nil
		})

	err := s.handler.UploadDataset(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Data    map[string]interface{} `json:"data"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Dataset loaded", resp.Message)
	s.EqualValues(2, resp.Data["records"])
	s.EqualValues(1, resp.Data["dropped_rows"])
	s.EqualValues(2, resp.Data["merchants"])
}

func (s *DatasetHandlerTestSuite) TestUploadDataset_MissingFile() {
	c, rec := s.uploadRequest("attachment", "march.csv", []byte("a"))

	err := s.handler.UploadDataset(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("DATASET_004", resp.Error.Code)
	s.Equal("trace-upload", resp.Error.TraceID)
}

func (s *DatasetHandlerTestSuite) TestUploadDataset_UnsupportedExtension() {
	c, rec := s.uploadRequest("file", gofakeit.Word()+".pdf", []byte("%PDF"))

	err := s.handler.UploadDataset(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_007", s.decodeError(rec).Error.Code)
}

func (s *DatasetHandlerTestSuite) TestUploadDataset_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"empty file", services.ErrEmptyInput, http.StatusUnprocessableEntity, "DATASET_001"},
		{"unreadable workbook", fmt.Errorf("%w: zip: not a valid zip file", workbook.ErrUnreadableWorkbook), http.StatusUnprocessableEntity, "DATASET_003"},
		{"unsupported content", fmt.Errorf("%w: \".xlsb\"", workbook.ErrUnsupportedFile), http.StatusBadRequest, "VALIDATION_007"},
		{"registry failure", fmt.Errorf("failed to create ingestion run: disk full"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.uploadRequest("file", "march.xlsx", []byte("PK"))
			s.mockService.EXPECT().LoadDataset(gomock.Any(), "march.xlsx", gomock.Any()).Return(nil, tc.err)

			err := s.handler.UploadDataset(c)

			s.NoError(err)
			s.Equal(tc.status, rec.Code)
			resp := s.decodeError(rec)
			s.Equal(tc.code, resp.Error.Code)
			s.NotContains(resp.Error.Message, "disk full")
		})
	}
}

func (s *DatasetHandlerTestSuite) TestGetCurrentDataset_NotLoaded() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/current", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockService.EXPECT().CurrentDataset().Return(nil, services.ErrNoDataset)

	err := s.handler.GetCurrentDataset(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("DATASET_002", s.decodeError(rec).Error.Code)
}

func (s *DatasetHandlerTestSuite) TestGetCurrentDataset_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/current", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	dataset := sampleDataset()
	s.mockService.EXPECT().CurrentDataset().Return(dataset, nil)

	err := s.handler.GetCurrentDataset(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), dataset.ID.String())
	s.Contains(rec.Body.String(), `"source_name":"march.csv"`)
}

func (s *DatasetHandlerTestSuite) TestListMerchants() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/current/merchants", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockService.EXPECT().CurrentDataset().Return(sampleDataset(), nil)

	err := s.handler.ListMerchants(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Merchants []string `json:"merchants"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal([]string{"Acme", "Globex"}, resp.Data.Merchants)
}

func (s *DatasetHandlerTestSuite) TestListMerchants_EmptyDatasetReturnsEmptyList() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/current/merchants", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockService.EXPECT().CurrentDataset().Return(&models.Dataset{}, nil)

	s.NoError(s.handler.ListMerchants(c))
	s.Contains(rec.Body.String(), `"merchants":[]`)
}

func (s *DatasetHandlerTestSuite) TestListIngestionRuns_ClampsLimit() {
	testCases := []struct {
		query    string
		expected int
	}{
		{"", defaultPageLimit},
		{"?limit=5", 5},
		{"?limit=500", maxPageLimit},
		{"?limit=-3", defaultPageLimit},
		{"?limit=abc", defaultPageLimit},
	}

	for _, tc := range testCases {
		s.Run(tc.query, func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/runs"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)

			run := models.IngestionRun{
				ID:         uuid.New(),
				SourceName: gofakeit.Word() + ".xlsx",
				Status:     models.IngestionStatusSucceeded,
				TotalRows:  10,
			}
			s.mockService.EXPECT().ListIngestionRuns(gomock.Any(), tc.expected).Return([]models.IngestionRun{run}, nil)

			s.NoError(s.handler.ListIngestionRuns(c))
			s.Equal(http.StatusOK, rec.Code)
			s.Contains(rec.Body.String(), run.ID.String())
		})
	}
}
