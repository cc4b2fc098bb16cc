package blocked

import "github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"

// DBExecutor *sql.DB или *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
