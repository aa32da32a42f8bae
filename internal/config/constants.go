package config

// Application constants for the esub report generator
const (
	// Application Info
	AppName = "esub"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"
	DefaultLogFile   = "logs/reportgen.log"

	// Export defaults
	DefaultReportsDir   = "reports"
	DefaultExportFormat = "csv"

	// Workbook name used for xlsx export
	ReportWorkbookFile = "tables.xlsx"

	// JSON bundle name
	ReportJSONFile = "tables.json"
)
