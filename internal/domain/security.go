package domain

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
)

// SecurityPattern is one Bitcoin-specific source pattern the scanner looks
// for. Patterns are fixed at startup and matched case-insensitively.
type SecurityPattern struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`

	re *regexp.Regexp
}

// SecurityPatterns is the fixed table of Bitcoin-sensitive code patterns.
var SecurityPatterns = []SecurityPattern{
	{Pattern: `private_?key`, Description: "Possible private key handling"},
	{Pattern: `mnemonic`, Description: "Possible mnemonic phrase handling"},
	{Pattern: `wallet`, Description: "Wallet implementation found"},
	{Pattern: `(?:seed|hd)_phrase`, Description: "HD wallet seed phrase handling"},
	{Pattern: `bitcoin_?rpc`, Description: "Bitcoin RPC connection"},
	{Pattern: `(?:testnet|mainnet)`, Description: "Network selection code"},
	{Pattern: `(?:taproot|schnorr|segwit)`, Description: "Advanced Bitcoin cryptography usage"},
}

func init() {
	for i := range SecurityPatterns {
		SecurityPatterns[i].re = regexp.MustCompile(`(?i)` + SecurityPatterns[i].Pattern)
	}
}

// Finding is a single security pattern match in a source file.
type Finding struct {
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Description string   `json:"description"`
	Identifier  string   `json:"identifier"`
	Context     []string `json:"context,omitempty"`
}

// VulnerableDep is a dependency flagged by the Rust audit.
type VulnerableDep struct {
	Package string `json:"package"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// ScanReport aggregates everything the security scan produced.
type ScanReport struct {
	RootPath       string          `json:"root_path"`
	FilesScanned   int             `json:"files_scanned"`
	Findings       []Finding       `json:"findings"`
	AuditAvailable bool            `json:"audit_available"`
	VulnerableDeps []VulnerableDep `json:"vulnerable_deps,omitempty"`
	RustFiles      int             `json:"rust_files"`
	HasCargoToml   bool            `json:"has_cargo_toml"`
}

const contextLines = 2

// ScanContent applies every security pattern to the file content and returns
// findings with line numbers and surrounding context.
func ScanContent(file, content string) []Finding {
	lines := strings.Split(content, "\n")

	var findings []Finding
	for _, p := range SecurityPatterns {
		for _, loc := range p.re.FindAllStringIndex(content, -1) {
			lineNo := strings.Count(content[:loc[0]], "\n") + 1
			findings = append(findings, Finding{
				File:        file,
				Line:        lineNo,
				Description: p.Description,
				Identifier:  identifierWords(content, loc[0], loc[1]),
				Context:     contextAround(lines, lineNo),
			})
		}
	}
	return findings
}

// identifierWords expands a match to the enclosing identifier and normalizes
// it to lower-case words, so walletSeedPhrase reports as "wallet seed phrase".
func identifierWords(content string, start, end int) string {
	for start > 0 && isWordByte(content[start-1]) {
		start--
	}
	for end < len(content) && isWordByte(content[end]) {
		end++
	}

	var words []string
	for _, part := range strings.Split(content[start:end], "_") {
		for _, w := range camelcase.Split(part) {
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	return strings.Join(words, " ")
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func contextAround(lines []string, lineNo int) []string {
	start := max(0, lineNo-1-contextLines)
	end := min(len(lines), lineNo+contextLines)

	ctx := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		ctx = append(ctx, strings.TrimSpace(l))
	}
	return ctx
}
