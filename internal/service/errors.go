package service

import "errors"

var (
    // ErrSelfFollow 自己关注自己，进存储层之前直接拒绝
    ErrSelfFollow = errors.New("cannot follow yourself")
    // ErrAlreadyFollowing 重复关注，由原子插入的唯一键冲突翻译而来
    ErrAlreadyFollowing = errors.New("already following this author")
    // ErrUserNotFound 用户名无法解析为已注册用户
    ErrUserNotFound = errors.New("user not found")
    // ErrUserExists 注册时用户名或邮箱已被占用
    ErrUserExists = errors.New("username or email already taken")
    // ErrInvalidCredentials 登录失败
    ErrInvalidCredentials = errors.New("invalid username or password")
)
