package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

const secretKey = "0b6f0d4e-8f0e-4a8c-9d36-3c1a1d1c6a0e"

type URLRepositoryTestSuite struct {
	suite.Suite
	errUnknown      error
	errAffectedRows error
	columns         []string
	mock            sqlmock.Sqlmock
	repo            *URLRepository
}

func (suite *URLRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.errAffectedRows = errors.New("affected rows error")
	suite.columns = []string{"id", "key", "secret_key", "target_url", "is_active", "clicks", "created_at", "updated_at"}
}

func (suite *URLRepositoryTestSuite) SetupSubTest() {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}
	suite.T().Cleanup(func() {
		mockDB.Close()
	})

	db := sqlx.NewDb(mockDB, "sqlmock")

	suite.mock = mock
	suite.repo = NewURLRepository(db)
}

func (suite *URLRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *URLRepositoryTestSuite) row(isActive bool, clicks int64) *sqlmock.Rows {
	return sqlmock.NewRows(suite.columns).
		AddRow(1, "abcDEF", secretKey, "https://example.com", isActive, clicks, time.Time{}, time.Time{})
}

func (suite *URLRepositoryTestSuite) TestSave() {
	suite.Run("key exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abcDEF", secretKey, "https://example.com").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: keyConstraint})

		url, err := suite.repo.Save(context.Background(), "abcDEF", secretKey, "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrKeyExists)
		suite.Nil(url)
	})

	suite.Run("secret key exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abcDEF", secretKey, "https://example.com").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: secretKeyConstraint})

		url, err := suite.repo.Save(context.Background(), "abcDEF", secretKey, "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrSecretKeyExists)
		suite.Nil(url)
	})

	suite.Run("unknown constraint", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abcDEF", secretKey, "https://example.com").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "urls_pkey"})

		url, err := suite.repo.Save(context.Background(), "abcDEF", secretKey, "https://example.com")

		suite.Error(err)
		suite.NotErrorIs(err, entity.ErrKeyExists)
		suite.NotErrorIs(err, entity.ErrSecretKeyExists)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abcDEF", secretKey, "https://example.com").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.Save(context.Background(), "abcDEF", secretKey, "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`INSERT INTO urls`).
			WithArgs("abcDEF", secretKey, "https://example.com").
			WillReturnRows(suite.row(true, 0))

		url, err := suite.repo.Save(context.Background(), "abcDEF", secretKey, "https://example.com")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal(int64(1), url.ID)
		suite.Equal("abcDEF", url.Key)
		suite.Equal(secretKey, url.SecretKey)
		suite.Equal("https://example.com", url.TargetURL)
		suite.True(url.IsActive)
		suite.Zero(url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveActiveByKey() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = \$1 AND is_active`).
			WithArgs("abcDEF").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "abcDEF")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = \$1 AND is_active`).
			WithArgs("abcDEF").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "abcDEF")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.NotErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = \$1 AND is_active`).
			WithArgs("abcDEF").
			WillReturnRows(suite.row(true, 3))

		url, err := suite.repo.RetrieveActiveByKey(context.Background(), "abcDEF")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abcDEF", url.Key)
		suite.Equal(int64(3), url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveByKey() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = \$1`).
			WithArgs("abcDEF").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.RetrieveByKey(context.Background(), "abcDEF")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("inactive url", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE key = \$1`).
			WithArgs("abcDEF").
			WillReturnRows(suite.row(false, 0))

		url, err := suite.repo.RetrieveByKey(context.Background(), "abcDEF")

		suite.NoError(err)
		suite.NotNil(url)
		suite.False(url.IsActive)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveBySecretKey() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE secret_key = \$1`).
			WithArgs(secretKey).
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.RetrieveBySecretKey(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE secret_key = \$1`).
			WithArgs(secretKey).
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.RetrieveBySecretKey(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls WHERE secret_key = \$1`).
			WithArgs(secretKey).
			WillReturnRows(suite.row(false, 7))

		url, err := suite.repo.RetrieveBySecretKey(context.Background(), secretKey)

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal(secretKey, url.SecretKey)
		suite.False(url.IsActive)
		suite.Equal(int64(7), url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestIncrementClicks() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs("abcDEF").
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.IncrementClicks(context.Background(), "abcDEF")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs("abcDEF").
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.IncrementClicks(context.Background(), "abcDEF")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET clicks = clicks \+ 1`).
			WithArgs("abcDEF").
			WillReturnRows(suite.row(true, 1))

		url, err := suite.repo.IncrementClicks(context.Background(), "abcDEF")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("https://example.com", url.TargetURL)
		suite.Equal(int64(1), url.Clicks)
	})
}

func (suite *URLRepositoryTestSuite) TestToggleActive() {
	suite.Run("url not found", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET is_active = NOT is_active`).
			WithArgs(secretKey).
			WillReturnError(sql.ErrNoRows)

		url, err := suite.repo.ToggleActive(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET is_active = NOT is_active`).
			WithArgs(secretKey).
			WillReturnError(suite.errUnknown)

		url, err := suite.repo.ToggleActive(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE urls SET is_active = NOT is_active`).
			WithArgs(secretKey).
			WillReturnRows(suite.row(false, 0))

		url, err := suite.repo.ToggleActive(context.Background(), secretKey)

		suite.NoError(err)
		suite.NotNil(url)
		suite.False(url.IsActive)
	})
}

func (suite *URLRepositoryTestSuite) TestRemove() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`DELETE FROM urls`).
			WithArgs(secretKey).
			WillReturnError(suite.errUnknown)

		err := suite.repo.Remove(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("rows affected error", func() {
		suite.mock.ExpectExec(`DELETE FROM urls`).
			WithArgs(secretKey).
			WillReturnResult(sqlmock.NewErrorResult(suite.errAffectedRows))

		err := suite.repo.Remove(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, suite.errAffectedRows)
	})

	suite.Run("url not found", func() {
		suite.mock.ExpectExec(`DELETE FROM urls`).
			WithArgs(secretKey).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.Remove(context.Background(), secretKey)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`DELETE FROM urls`).
			WithArgs(secretKey).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo.Remove(context.Background(), secretKey)

		suite.NoError(err)
	})
}

func (suite *URLRepositoryTestSuite) TestRetrieveAll() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY id`).
			WillReturnError(suite.errUnknown)

		urls, err := suite.repo.RetrieveAll(context.Background())

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(urls)
	})

	suite.Run("empty table", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(suite.columns))

		urls, err := suite.repo.RetrieveAll(context.Background())

		suite.NoError(err)
		suite.NotNil(urls)
		suite.Empty(urls)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(1, "abcDEF", secretKey, "https://example.com", true, 2, time.Time{}, time.Time{}).
			AddRow(2, "ghiJKL", "a2e0c3d1-6b7f-4f43-8a55-1b0c9b3b7c11", "https://example.org", false, 0, time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM urls ORDER BY id`).
			WillReturnRows(rows)

		urls, err := suite.repo.RetrieveAll(context.Background())

		suite.NoError(err)
		suite.Len(urls, 2)
		suite.Equal("abcDEF", urls[0].Key)
		suite.True(urls[0].IsActive)
		suite.Equal("ghiJKL", urls[1].Key)
		suite.False(urls[1].IsActive)
	})
}

func TestURLRepository(t *testing.T) {
	suite.Run(t, new(URLRepositoryTestSuite))
}
