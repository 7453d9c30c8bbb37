package migrations

import _ "embed"

// InitUp создает таблицу documents. Ее же применяют OpenBackend и интеграционные тесты.
//
//go:embed 000001_init.up.sql
var InitUp string
