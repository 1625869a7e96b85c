package models

import "errors"

// Servis katmanının ürettiği hata türleri. Handler'lar errors.Is ile
// HTTP status koduna çevirir, diğer tüm hatalar 500 olarak döner.
var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("daily search limit reached")
	ErrInvalidState = errors.New("invalid state")
)
