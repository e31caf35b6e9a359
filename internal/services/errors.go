package services

import (
	"errors"
)

// 领域错误类别，handlers 用 errors.Is 映射为 HTTP 状态码
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)

// Error 携带用户可见消息的领域错误
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func badRequest(msg string) error { return &Error{Kind: ErrBadRequest, Msg: msg} }

func conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }
