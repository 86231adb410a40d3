package repository

import (
    "fmt"
    "testing"

    "github.com/google/uuid"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
    ))
    return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
    t.Helper()
    u := &model.User{
        ID:       uuid.New().String(),
        Username: username,
        Email:    fmt.Sprintf("%s@example.com", username),
        Password: "x",
    }
    require.NoError(t, db.Create(u).Error)
    return u
}
