package domain

// SyncAction classifies what the sync did (or would do) for one file.
type SyncAction string

const (
	SyncUpToDate  SyncAction = "up-to-date"
	SyncDiffers   SyncAction = "differs"
	SyncCopied    SyncAction = "copied"
	SyncWouldCopy SyncAction = "would-copy"
	SyncMissing   SyncAction = "source-missing"
)

// LabelCommitMessage is the fixed commit message used when sync commits
// updated labelling files into a target repository.
const LabelCommitMessage = "docs(labelling): synchronize AI labelling system\n\n" +
	"Labels: [AIR-3][AIS-3][AIE-3]\n\n" +
	"Ensure consistent labelling standards across all repositories."

// FileSyncResult records the outcome for one file in one target repository.
type FileSyncResult struct {
	Repo   string     `json:"repo"`
	File   string     `json:"file"`
	Action SyncAction `json:"action"`
}

// SyncSummary is the aggregate outcome of a sync run across all targets.
type SyncSummary struct {
	Source         string           `json:"source"`
	CheckOnly      bool             `json:"check_only"`
	DryRun         bool             `json:"dry_run"`
	Results        []FileSyncResult `json:"results"`
	ReposWithDiffs []string         `json:"repos_with_diffs"`
	ReposSynced    []string         `json:"repos_synced"`
	ReposCommitted []string         `json:"repos_committed,omitempty"`
	HasDifferences bool             `json:"has_differences"`
}
