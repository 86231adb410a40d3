package repository

import (
    "errors"

    "gorm.io/gorm"
)

var (
    // ErrNotFound 标识符无法解析，或嵌套路径下越权访问
    ErrNotFound = errors.New("record not found")
    // ErrConflict 存储层唯一约束被打破（slug、关注对）
    ErrConflict = errors.New("unique constraint violated")
)

// translate 把 gorm 错误收敛到仓储错误分类
// TranslateError 开启后唯一键冲突统一是 gorm.ErrDuplicatedKey，
// 不吞掉其它错误（连接失败等原样上抛）
func translate(err error) error {
    switch {
    case err == nil:
        return nil
    case errors.Is(err, gorm.ErrRecordNotFound):
        return ErrNotFound
    case errors.Is(err, gorm.ErrDuplicatedKey):
        return ErrConflict
    default:
        return err
    }
}
