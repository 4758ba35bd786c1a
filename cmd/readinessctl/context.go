package main

import (
	"fmt"

	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/readiness-survey-api/internal/config"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/repositories"
	"github.com/PavaniTiago/readiness-survey-api/internal/infrastructure/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cliContext carries the global flags and the lazily opened database.
type cliContext struct {
	db       config.Database
	output   string
	logLevel string

	log    *zap.Logger
	gormDB *gorm.DB
}

// useCase opens the database on first use; commands that never touch
// storage do not create the SQLite file.
func (c *cliContext) useCase() (usecases.SurveyUseCase, error) {
	if c.gormDB == nil {
		if c.db.Driver == "" {
			c.db.Driver = config.DriverSQLite
		}
		if c.db.Driver == config.DriverSQLite && c.db.URL == "" {
			c.db.URL = config.DefaultSQLitePath
		}

		db, err := database.SetupDatabase(c.db, c.logger())
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		c.gormDB = db
	}
	return usecases.NewSurveyUseCase(repositories.NewResponseRepository(c.gormDB)), nil
}

func (c *cliContext) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

func (c *cliContext) close() error {
	if c.log != nil {
		_ = c.log.Sync()
	}
	if c.gormDB == nil {
		return nil
	}
	err := database.Close(c.gormDB)
	c.gormDB = nil
	return err
}

func (c *cliContext) format() outputFormat {
	f, _ := parseOutputFormat(c.output)
	return f
}
