package models_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/frugal-finance/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimezone() {
	budget := models.Budget{Name: "Timezones"}
	suite.Require().Nil(models.DB.Create(&budget).Error)

	var found models.Budget
	suite.Require().Nil(models.DB.First(&found, "id = ?", budget.ID).Error)

	assert.Equal(suite.T(), time.UTC, found.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, found.UpdatedAt.Location())
}

func (suite *TestSuiteStandard) TestModelIDGenerated() {
	budget := models.Budget{Name: "With ID"}
	suite.Require().Nil(models.DB.Create(&budget).Error)
	assert.NotEqual(suite.T(), uuid.Nil, budget.ID)

	other := models.Budget{Name: "With ID"}
	suite.Require().Nil(models.DB.Create(&other).Error)
	assert.NotEqual(suite.T(), budget.ID, other.ID, "IDs must be unique")
}

func (suite *TestSuiteStandard) TestModelNames() {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{"Plain", "Holiday", "Holiday", nil},
		{"Trimmed", "  Holiday\t", "Holiday", nil},
		{"NFC normalized", "Cafe\u0301", "Caf\u00e9", nil},
		{"Empty", "", "", models.ErrNameEmpty},
		{"Whitespace only", "   ", "", models.ErrNameEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, m := range []models.Model{&models.Budget{Name: tt.input}, &models.Category{Name: tt.input}, &models.Business{Name: tt.input}} {
				err := models.DB.Create(m).Error
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err, "%s", m.Self())
					continue
				}

				assert.Nil(t, err, "%s", m.Self())
				switch v := m.(type) {
				case *models.Budget:
					assert.Equal(t, tt.expected, v.Name)
				case *models.Category:
					assert.Equal(t, tt.expected, v.Name)
				case *models.Business:
					assert.Equal(t, tt.expected, v.Name)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestModelNotFound() {
	tests := []struct {
		name    string
		model   models.Model
		message string
	}{
		{"Budget", &models.Budget{}, "there is no budget matching your query"},
		{"Category", &models.Category{}, "there is no category matching your query"},
		{"Business", &models.Business{}, "there is no business matching your query"},
		{"Transaction", &models.Transaction{}, "there is no transaction matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.First(tt.model, "id = ?", uuid.New()).Error
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestModelDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Budget{Name: "Closed"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	err = models.DB.Find(&[]models.Category{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

// TestModelErrorLoggedWithContext verifies that database errors are logged
// with the logger of the request context.
func (suite *TestSuiteStandard) TestModelErrorLoggedWithContext() {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("request-id", "f3a1c2d4").Logger().WithContext(context.Background())

	suite.CloseDB()

	err := models.DB.WithContext(ctx).First(&models.Budget{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
	assert.Contains(suite.T(), buf.String(), `"request-id":"f3a1c2d4"`)
	assert.Contains(suite.T(), buf.String(), "sql: database is closed")
}
