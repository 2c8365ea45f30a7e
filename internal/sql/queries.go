package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_load.sql
var RegisterLoad string

//go:embed queries/lookup_load_by_sha.sql
var LookupLoadBySHA string

//go:embed queries/update_load_status.sql
var UpdateLoadStatus string

//go:embed queries/delete_load_rows.sql
var DeleteLoadRows string

//go:embed queries/insert_kpi.sql
var InsertKPI string

//go:embed queries/insert_growth.sql
var InsertGrowth string

//go:embed queries/deactivate_older_loads.sql
var DeactivateOlderLoads string

//go:embed queries/activate_load.sql
var ActivateLoad string

//go:embed queries/analyze_report.sql
var AnalyzeReport string
