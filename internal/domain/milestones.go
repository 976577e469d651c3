package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionResult is the test outcome for one milestone section.
type SectionResult struct {
	Completed        bool     `json:"completed"`
	Progress         int      `json:"progress"`
	TestCoverage     int      `json:"test_coverage"`
	ComponentsTested []string `json:"components_tested"`
}

// MilestoneSections fixes the section order used in summaries.
var MilestoneSections = []string{
	"core_issuance",
	"distribution",
	"dex_integration",
	"governance",
	"security",
	"memory_optimization",
}

// DefaultSectionResults returns the placeholder results used when no stored
// test report is available.
func DefaultSectionResults() map[string]SectionResult {
	return map[string]SectionResult{
		"core_issuance": {
			Completed:        true,
			Progress:         100,
			TestCoverage:     100,
			ComponentsTested: []string{"token_supply", "halving_logic", "issuance_rate"},
		},
		"distribution": {
			Progress:         70,
			TestCoverage:     85,
			ComponentsTested: []string{"allocation_percentages", "tracking_system"},
		},
		"dex_integration": {
			Progress:         10,
			TestCoverage:     25,
			ComponentsTested: []string{"liquidity_initialization"},
		},
		"governance": {},
		"security": {
			Progress:         30,
			TestCoverage:     40,
			ComponentsTested: []string{"overflow_protection", "authorization"},
		},
		"memory_optimization": {
			Progress:         45,
			TestCoverage:     60,
			ComponentsTested: []string{"heap_allocation", "struct_sizing"},
		},
	}
}

// MergeSectionResults overlays stored results on the placeholder defaults.
// Unknown section names in the overlay are ignored.
func MergeSectionResults(base, overlay map[string]SectionResult) map[string]SectionResult {
	merged := make(map[string]SectionResult, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		if _, ok := merged[k]; ok {
			merged[k] = v
		}
	}
	return merged
}

var (
	lastUpdatedRe   = regexp.MustCompile(`Last updated: \d{4}-\d{2}-\d{2}`)
	milestone2Re    = regexp.MustCompile(`### Milestone 2: Distribution Allocation \(In Progress - \d+%\)`)
	distributionRe  = regexp.MustCompile(`\| 2: Distribution \| Q2 2025 \| In Progress \(.*?\) 🔄 \| \d+% 🔄 \|`)
	dexPendingRe    = regexp.MustCompile(`\| 3: DEX Integration \| Q2 2025 \| Pending ⏳ \| 0% ⏳ \|`)
	memoryRe        = regexp.MustCompile(`\| Memory Optimization \| 🔄 In Progress \| Implementation uses minimal heap allocations \|`)
	rustMigrationRe = regexp.MustCompile(`\| Distribution \| Clarity \| \d+% Migrated to Rust \| \d+% \|`)
	recentUpdatesRe = regexp.MustCompile(`## Recent Updates\n\n`)
)

// UpdateMilestoneDoc applies the tracked progress numbers to the milestone
// markdown document and returns the rewritten content. today is a YYYY-MM-DD
// date string.
func UpdateMilestoneDoc(content string, results map[string]SectionResult, today string) string {
	updated := lastUpdatedRe.ReplaceAllString(content, "Last updated: "+today)

	dist := results["distribution"]
	updated = milestone2Re.ReplaceAllString(updated,
		fmt.Sprintf("### Milestone 2: Distribution Allocation (In Progress - %d%%)", dist.Progress))
	updated = distributionRe.ReplaceAllString(updated,
		fmt.Sprintf("| 2: Distribution | Q2 2025 | In Progress (%d%%) 🔄 | %d%% 🔄 |", dist.Progress, dist.TestCoverage))

	if dex := results["dex_integration"]; dex.TestCoverage > 0 {
		if dex.Progress > 0 {
			updated = dexPendingRe.ReplaceAllString(updated,
				fmt.Sprintf("| 3: DEX Integration | Q2 2025 | In Progress (%d%%) 🔄 | %d%% 🔄 |", dex.Progress, dex.TestCoverage))
		} else {
			updated = dexPendingRe.ReplaceAllString(updated,
				fmt.Sprintf("| 3: DEX Integration | Q2 2025 | Pending ⏳ | %d%% 🔄 |", dex.TestCoverage))
		}
	}

	if mem := results["memory_optimization"]; memoryRe.MatchString(updated) {
		updated = memoryRe.ReplaceAllString(updated,
			fmt.Sprintf("| Memory Optimization | 🔄 In Progress | Implementation uses minimal heap allocations (%d%% optimized) |", mem.Progress))
	}

	updated = rustMigrationRe.ReplaceAllString(updated,
		fmt.Sprintf("| Distribution | Clarity | %d%% Migrated to Rust | %d%% |", dist.Progress, dist.TestCoverage))

	updated = recentUpdatesRe.ReplaceAllString(updated,
		fmt.Sprintf("## Recent Updates\n\n- %s: Automatically updated milestone tracking based on test results\n", today))

	return updated
}

// RenderTestSummary builds the markdown summary table written alongside the
// milestone document.
func RenderTestSummary(results map[string]SectionResult, generatedAt string) string {
	var b strings.Builder
	b.WriteString("# Test Results Summary\n\n")
	b.WriteString("Generated: " + generatedAt + "\n\n")
	b.WriteString("| Section | Progress | Test Coverage | Components Tested |\n")
	b.WriteString("|---------|----------|---------------|-------------------|\n")

	for _, section := range MilestoneSections {
		r, ok := results[section]
		if !ok {
			continue
		}

		progress := fmt.Sprintf("%d%%", r.Progress)
		if r.Completed {
			progress = "Complete"
		} else if r.Progress == 0 {
			progress = "Not Started"
		}

		components := "None"
		if len(r.ComponentsTested) > 0 {
			components = strings.Join(r.ComponentsTested, ", ")
		}

		fmt.Fprintf(&b, "| %s | %s | %d%% | %s |\n",
			sectionTitle(section), progress, r.TestCoverage, components)
	}

	return b.String()
}

func sectionTitle(section string) string {
	parts := strings.Split(section, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
