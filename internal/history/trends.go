package history

import (
	"fmt"
	"math"
	"time"
)

func BuildTrendReport(runs []Run, window time.Duration) (TrendReport, error) {
	if len(runs) == 0 {
		return TrendReport{}, fmt.Errorf("no runs available")
	}

	points := make([]TrendPoint, 0, len(runs))
	for i, current := range runs {
		point := TrendPoint{
			Timestamp:        current.Timestamp,
			FileCount:        current.FileCount,
			DeclarationCount: current.DeclarationCount,
			ImportCount:      current.ImportCount,
			ErrorCount:       current.ErrorCount,
		}

		if i > 0 {
			prev := runs[i-1]
			point.DeltaFiles = current.FileCount - prev.FileCount
			point.DeltaDeclarations = current.DeclarationCount - prev.DeclarationCount
			point.DeltaImports = current.ImportCount - prev.ImportCount
			point.DeltaErrors = current.ErrorCount - prev.ErrorCount
			if prev.DeclarationCount > 0 {
				point.DeclGrowthPct = (float64(point.DeltaDeclarations) / float64(prev.DeclarationCount)) * 100
			}
		}

		avgDecls, avgErrors := movingAverages(runs, i, window)
		point.AvgDeclarations = round2(avgDecls)
		point.AvgErrors = round2(avgErrors)
		point.WindowHours = round2(window.Hours())
		points = append(points, point)
	}

	return TrendReport{
		SchemaVersion: SchemaVersion,
		Since:         runs[0].Timestamp,
		Until:         runs[len(runs)-1].Timestamp,
		Window:        window.String(),
		RunCount:      len(points),
		Points:        points,
	}, nil
}

func movingAverages(runs []Run, index int, window time.Duration) (float64, float64) {
	if window <= 0 {
		return float64(runs[index].DeclarationCount), float64(runs[index].ErrorCount)
	}

	cutoff := runs[index].Timestamp.Add(-window)
	var declTotal int
	var errorTotal int
	count := 0
	for i := index; i >= 0; i-- {
		if runs[i].Timestamp.Before(cutoff) {
			break
		}
		declTotal += runs[i].DeclarationCount
		errorTotal += runs[i].ErrorCount
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return float64(declTotal) / float64(count), float64(errorTotal) / float64(count)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
