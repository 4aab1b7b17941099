package sqlstore

import "embed"

//go:embed migrations/*.sql
var CreateTableFiles embed.FS
