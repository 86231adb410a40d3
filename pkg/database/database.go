package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/greenpandorik/yatube-project-api/config"
    "github.com/greenpandorik/yatube-project-api/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构
// TranslateError 开启后，唯一键冲突统一表现为 gorm.ErrDuplicatedKey，
// 仓储层依赖这一点做重复关注/slug 冲突的权威判定。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    gormCfg := &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    }

    var (
        db  *gorm.DB
        err error
    )
    switch cfg.Database.Driver {
    case "sqlite":
        db, err = gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
    case "postgres":
        db, err = gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }

    if cfg.Database.Driver == "sqlite" {
        if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
            return nil, err
        }
    }

    if err := Migrate(db); err != nil {
        return nil, err
    }
    return db, nil
}

// Migrate 建表与索引（唯一键约束在此落地）
func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &model.User{},
        &model.Group{},
        &model.Post{},
        &model.Comment{},
        &model.Follow{},
    )
}
