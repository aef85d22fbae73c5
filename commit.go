// Package release computes version bumps and changelogs from commit history.
// This file contains commit message classification.
package release

import (
	"time"

	"github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"
)

// Commit is a raw commit as read from history: the full message (subject,
// optional body and footers), the commit hash, and the committer timestamp.
type Commit struct {
	// SHA is the commit hash in hex form.
	SHA string

	// Message is the full commit message including body and footers.
	Message string

	// When is the committer timestamp, used to order changelog entries.
	When time.Time
}

// CommitRecord is the classified form of a single commit message.
//
// Records are immutable values: classification is a pure function of the
// message text, so classifying the same message twice yields identical
// records. Records whose Conventional field is false are excluded from both
// bump computation and changelog rendering.
type CommitRecord struct {
	// Type is the conventional commit type token (feat, fix, docs, ...).
	// Empty when Conventional is false.
	Type string

	// Scope is the optional scope from the subject line.
	Scope string

	// Description is the subject text after the type/scope prefix.
	Description string

	// Body is the optional free-form message body.
	Body string

	// IsBreaking is true when the subject carries the exclamation marker or
	// the footers contain a breaking-change token. Any recognized breaking
	// signal is sufficient.
	IsBreaking bool

	// Conventional is true when the message matched the conventional commit
	// shape with a recognized type. Non-conventional records are consumed
	// silently rather than reported as errors.
	Conventional bool

	// SHA is the commit hash, when known. Empty for records classified from
	// bare message strings.
	SHA string

	// When is the committer timestamp, when known.
	When time.Time
}

// Classify parses a single commit message into a CommitRecord.
//
// The subject line is matched against the conventional commit shape
// "type(scope)!: description" with the conventional type set (feat, fix,
// docs, style, refactor, perf, test, build, ci, chore, revert). Messages
// that do not match, or whose type token is not recognized, yield a record
// with Conventional set to false; classification never fails.
//
// Classify is a pure function and is safe for concurrent use.
func Classify(message string) CommitRecord {
	if message == "" {
		return CommitRecord{}
	}

	// A fresh parser machine per call: the machine carries parse state, so
	// sharing one across goroutines would not be safe.
	machine := parser.NewMachine(
		conventionalcommits.WithTypes(conventionalcommits.TypesConventional),
	)

	msg, err := machine.Parse([]byte(message))
	if err != nil {
		// Malformed or unknown-type message: excluded, not fatal.
		return CommitRecord{}
	}

	cc, ok := msg.(*conventionalcommits.ConventionalCommit)
	if !ok || !cc.Ok() {
		return CommitRecord{}
	}

	record := CommitRecord{
		Type:         cc.Type,
		Description:  cc.Description,
		IsBreaking:   cc.IsBreakingChange(),
		Conventional: true,
	}
	if cc.Scope != nil {
		record.Scope = *cc.Scope
	}
	if cc.Body != nil {
		record.Body = *cc.Body
	}

	return record
}

// ClassifyCommit classifies a commit's message and carries over its hash and
// timestamp so changelog entries can reference and order them.
func ClassifyCommit(c Commit) CommitRecord {
	record := Classify(c.Message)
	record.SHA = c.SHA
	record.When = c.When
	return record
}

// ClassifyAll classifies a sequence of commits in order.
func ClassifyAll(commits []Commit) []CommitRecord {
	records := make([]CommitRecord, 0, len(commits))
	for _, c := range commits {
		records = append(records, ClassifyCommit(c))
	}
	return records
}
