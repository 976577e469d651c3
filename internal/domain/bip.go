package domain

import (
	"regexp"
	"strings"
)

// StandardDefinition describes one BIP standard the validator can recognize.
// The detection pattern is compiled once at package init; entries are never
// mutated after that.
type StandardDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`

	re *regexp.Regexp
}

// BIPStandards is the fixed registry of recognized standards. Scan order is
// declaration order.
var BIPStandards = []StandardDefinition{
	{
		ID:          "BIP-341",
		Name:        "Taproot",
		Pattern:     `tr\([A-Za-z0-9]+,\{[^}]+\}\)`,
		Description: "Taproot output spending conditions",
	},
	{
		ID:          "BIP-342",
		Name:        "Tapscript",
		Pattern:     `OP_CHECKSIG|OP_CHECKSIGVERIFY`,
		Description: "Tapscript validation rules",
	},
	{
		ID:          "BIP-174",
		Name:        "PSBT",
		Pattern:     `psbt:[0-9a-f]+`,
		Description: "Partially Signed Bitcoin Transaction",
	},
	{
		ID:          "BIP-370",
		Name:        "PSBT Version 2",
		Pattern:     `psbt:v2:[0-9a-f]+`,
		Description: "PSBT Version 2 format",
	},
}

func init() {
	for i := range BIPStandards {
		BIPStandards[i].re = regexp.MustCompile(`(?i)` + BIPStandards[i].Pattern)
	}
}

// ValidationDetail is the per-standard outcome of a validation pass. For the
// "nothing matched" case only Error is set.
type ValidationDetail struct {
	Standard    string   `json:"standard,omitempty"`
	Name        string   `json:"name,omitempty"`
	Compliant   bool     `json:"compliant,omitempty"`
	Description string   `json:"description,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// ValidationReport is the full result of one validation call. It is built
// once and never mutated afterwards.
type ValidationReport struct {
	ValidationPerformed bool               `json:"validation_performed"`
	Timestamp           string             `json:"timestamp,omitempty"`
	StandardsChecked    []string           `json:"standards_checked"`
	Compliant           bool               `json:"compliant"`
	Details             []ValidationDetail `json:"details"`
	Warning             string             `json:"warning,omitempty"`
}

const (
	noStandardError   = "No recognized Bitcoin protocol standards found in input"
	warningAdvisory   = "Protocol validation passed with warnings"
	silentLeafWarning = "Missing recommended SILENT_LEAF pattern for privacy-preserving Taproot scripts"
	unsignedTxWarning = "PSBT should include unsigned_tx field"
)

// heuristics maps a standard id to its secondary check. Each check returns
// warnings for a matched standard; new standards add an entry here instead of
// branching inside the scan loop.
var heuristics = map[string]func(input string) []string{
	"BIP-341": func(input string) []string {
		if !strings.Contains(input, "SILENT_LEAF") {
			return []string{silentLeafWarning}
		}
		return nil
	},
	"BIP-174": func(input string) []string {
		if !strings.Contains(strings.ToLower(input), "unsigned_tx") {
			return []string{unsignedTxWarning}
		}
		return nil
	},
}

// ValidateProtocol checks the input text against every registered BIP
// standard, case-insensitively, in registry order. Absence of any match is a
// normal outcome reported as Compliant=false, never an error. Warnings from
// per-standard heuristics set the top-level advisory but do not flip
// compliance.
func ValidateProtocol(input string) ValidationReport {
	report := ValidationReport{
		ValidationPerformed: true,
		StandardsChecked:    []string{},
		Compliant:           true,
		Details:             []ValidationDetail{},
	}

	for _, std := range BIPStandards {
		if !std.re.MatchString(input) {
			continue
		}

		report.StandardsChecked = append(report.StandardsChecked, std.ID)

		detail := ValidationDetail{
			Standard:    std.ID,
			Name:        std.Name,
			Compliant:   true,
			Description: std.Description,
			Warnings:    []string{},
		}
		if check, ok := heuristics[std.ID]; ok {
			detail.Warnings = append(detail.Warnings, check(input)...)
		}
		report.Details = append(report.Details, detail)
	}

	if len(report.StandardsChecked) == 0 {
		report.Compliant = false
		report.Details = append(report.Details, ValidationDetail{Error: noStandardError})
		return report
	}

	for _, d := range report.Details {
		if len(d.Warnings) > 0 {
			report.Warning = warningAdvisory
			break
		}
	}

	return report
}
