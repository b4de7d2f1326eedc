package repository

import "errors"

var (
	ErrNotFound          = errors.New("entity not found")
	ErrAlreadyExists     = errors.New("entity already exists")
	ErrInsufficientFunds = errors.New("insufficient coin balance")
	ErrOutOfStock        = errors.New("product out of stock")
	ErrUpdateFailed      = errors.New("update failed")
	ErrOptimisticLock    = errors.New("optimistic lock conflict: data was modified by another process")
)
