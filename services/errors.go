package services

import "errors"

var ErrConflict = errors.New("username or email already registered")
var ErrNotFound = errors.New("record not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccessDenied = errors.New("access denied")
var ErrEmptyTitle = errors.New("title must not be empty")
