package config

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// HookName is a git lifecycle hook identifier, e.g. "pre-commit".
type HookName string

// Client-side hooks.
const (
	ApplypatchMsg       HookName = "applypatch-msg"
	PreApplypatch       HookName = "pre-applypatch"
	PostApplypatch      HookName = "post-applypatch"
	PreCommit           HookName = "pre-commit"
	PreMergeCommit      HookName = "pre-merge-commit"
	PrepareCommitMsg    HookName = "prepare-commit-msg"
	CommitMsg           HookName = "commit-msg"
	PostCommit          HookName = "post-commit"
	PreRebase           HookName = "pre-rebase"
	PostCheckout        HookName = "post-checkout"
	PostMerge           HookName = "post-merge"
	PrePush             HookName = "pre-push"
	PreAutoGc           HookName = "pre-auto-gc"
	PostRewrite         HookName = "post-rewrite"
	SendemailValidate   HookName = "sendemail-validate"
	FsmonitorWatchman   HookName = "fsmonitor-watchman"
	P4Changelist        HookName = "p4-changelist"
	P4PrepareChangelist HookName = "p4-prepare-changelist"
	P4PostChangelist    HookName = "p4-post-changelist"
	P4PreSubmit         HookName = "p4-pre-submit"
	PostIndexChange     HookName = "post-index-change"
)

// Server-side hooks.
const (
	PreReceive           HookName = "pre-receive"
	Update               HookName = "update"
	ProcReceive          HookName = "proc-receive"
	PostReceive          HookName = "post-receive"
	PostUpdate           HookName = "post-update"
	ReferenceTransaction HookName = "reference-transaction"
	PushToCheckout       HookName = "push-to-checkout"
)

// AllHooks lists every hook git knows about, in the order githooks(5)
// documents them. Reports and installs follow this order.
var AllHooks = []HookName{
	ApplypatchMsg,
	PreApplypatch,
	PostApplypatch,
	PreCommit,
	PreMergeCommit,
	PrepareCommitMsg,
	CommitMsg,
	PostCommit,
	PreRebase,
	PostCheckout,
	PostMerge,
	PrePush,
	PreReceive,
	Update,
	ProcReceive,
	PostReceive,
	PostUpdate,
	ReferenceTransaction,
	PushToCheckout,
	PreAutoGc,
	PostRewrite,
	SendemailValidate,
	FsmonitorWatchman,
	P4Changelist,
	P4PrepareChangelist,
	P4PostChangelist,
	P4PreSubmit,
	PostIndexChange,
}

var hookRank = func() map[HookName]int {
	m := make(map[HookName]int, len(AllHooks))
	for i, h := range AllHooks {
		m[h] = i
	}
	return m
}()

// ParseHookName returns the HookName for s. Matching is exact.
func ParseHookName(s string) (HookName, bool) {
	name := HookName(s)
	_, ok := hookRank[name]
	return name, ok
}

// String returns the hook name as git spells it.
func (h HookName) String() string {
	return string(h)
}

// SortHooks sorts names into the githooks(5) order.
func SortHooks(names []HookName) {
	sort.Slice(names, func(i, j int) bool {
		return hookRank[names[i]] < hookRank[names[j]]
	})
}

// hookNameStrings implements fuzzy.Source over AllHooks.
type hookNameStrings []HookName

func (h hookNameStrings) String(i int) string { return string(h[i]) }
func (h hookNameStrings) Len() int            { return len(h) }

// SuggestHook returns the known hook name closest to s, or "" if nothing is
// close. Both directions are tried so that missing and extra characters
// ("pre-comit", "pre-commmit") each find "pre-commit".
func SuggestHook(s string) HookName {
	s = normalizeHookKey(s)
	if name, ok := ParseHookName(s); ok {
		return name
	}

	if matches := fuzzy.FindFrom(s, hookNameStrings(AllHooks)); len(matches) > 0 {
		return AllHooks[matches[0].Index]
	}

	best, bestScore := HookName(""), 0
	for _, name := range AllHooks {
		matches := fuzzy.Find(string(name), []string{s})
		if len(matches) == 0 {
			continue
		}
		if best == "" || matches[0].Score > bestScore {
			best, bestScore = name, matches[0].Score
		}
	}
	return best
}

// normalizeHookKey folds case and underscores so "Pre_Commit" can be
// recognised as a misspelt "pre-commit".
func normalizeHookKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
