package history

import "time"

const SchemaVersion = 1

// Run is one recorded extraction pass over the configured scan paths.
type Run struct {
	ID               string         `json:"id"`
	SchemaVersion    int            `json:"schema_version"`
	Timestamp        time.Time      `json:"timestamp"`
	FileCount        int            `json:"file_count"`
	DeclarationCount int            `json:"declaration_count"`
	ImportCount      int            `json:"import_count"`
	ErrorCount       int            `json:"error_count"`
	ByLanguage       map[string]int `json:"by_language,omitempty"`
}

type TrendPoint struct {
	Timestamp         time.Time `json:"timestamp"`
	FileCount         int       `json:"file_count"`
	DeclarationCount  int       `json:"declaration_count"`
	ImportCount       int       `json:"import_count"`
	ErrorCount        int       `json:"error_count"`
	DeltaFiles        int       `json:"delta_files"`
	DeltaDeclarations int       `json:"delta_declarations"`
	DeltaImports      int       `json:"delta_imports"`
	DeltaErrors       int       `json:"delta_errors"`
	DeclGrowthPct     float64   `json:"decl_growth_pct"`
	AvgDeclarations   float64   `json:"avg_declarations"`
	AvgErrors         float64   `json:"avg_errors"`
	WindowHours       float64   `json:"window_hours"`
}

type TrendReport struct {
	SchemaVersion int          `json:"schema_version"`
	Since         time.Time    `json:"since"`
	Until         time.Time    `json:"until"`
	Window        string       `json:"window"`
	RunCount      int          `json:"run_count"`
	Points        []TrendPoint `json:"points"`
}
