package tests

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	dbadapter "agenda/internal/adapter/db"
	"agenda/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase gives every test its own SQLite file with the schema
// applied.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	DBPath string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	s.DBPath = filepath.Join(s.T().TempDir(), "tasks.db")
	db, err := dbadapter.Open(s.DBPath)
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.EnsureSchema(context.Background(), db))
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
		s.DB = nil
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
