package ci

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// EventKind identifies the triggering event.
type EventKind int

const (
	KindUnknown EventKind = iota
	KindPullRequest
	KindPush
)

func (k EventKind) String() string {
	switch k {
	case KindPullRequest:
		return "pull_request"
	case KindPush:
		return "push"
	default:
		return "unknown"
	}
}

// Event is the subset of a GitHub event payload the checker uses.
type Event struct {
	Repository  Repository   `json:"repository"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	Before      string       `json:"before,omitempty"`
	After       string       `json:"after,omitempty"`
	Ref         string       `json:"ref,omitempty"`
}

type Repository struct {
	FullName string `json:"full_name"`
}

type PullRequest struct {
	Number int    `json:"number"`
	Head   Branch `json:"head"`
	Base   Branch `json:"base"`
	User   User   `json:"user"`
}

type Branch struct {
	Ref string `json:"ref"`
}

type User struct {
	Login string `json:"login"`
}

// ReadEvent loads and parses the event payload at path.
func ReadEvent(path string) (*Event, error) {
	if path == "" {
		return nil, fmt.Errorf("no event payload path set: %w", titlecheck.ErrEventInvalid)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open GitHub event payload %s: %w: %w", path, titlecheck.ErrEventInvalid, err)
	}
	return ParseEvent(data)
}

// ParseEvent parses an event payload.
func ParseEvent(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("could not parse GitHub event payload: %w: %w", titlecheck.ErrEventInvalid, err)
	}
	return &ev, nil
}

// Kind classifies the event. A payload with a pull_request object is a pull
// request; one with an "after" commit is a push.
func (e *Event) Kind() EventKind {
	switch {
	case e.PullRequest != nil:
		return KindPullRequest
	case e.After != "":
		return KindPush
	default:
		return KindUnknown
	}
}

// DiffRange is a git revision range compared with the three-dot form.
type DiffRange struct {
	From string
	To   string
}

func (r DiffRange) String() string {
	return r.From + "..." + r.To
}

// DiffRange returns the revision range covering the event's changes.
func (e *Event) DiffRange() (DiffRange, error) {
	switch e.Kind() {
	case KindPullRequest:
		pr := e.PullRequest
		if pr.Base.Ref == "" || pr.Head.Ref == "" {
			return DiffRange{}, fmt.Errorf("pull request #%d is missing base or head ref: %w", pr.Number, titlecheck.ErrEventInvalid)
		}
		return DiffRange{From: "origin/" + pr.Base.Ref, To: "origin/" + pr.Head.Ref}, nil
	case KindPush:
		if e.Before == "" {
			return DiffRange{}, fmt.Errorf("push to %s is missing the before commit: %w", e.Ref, titlecheck.ErrEventInvalid)
		}
		return DiffRange{From: e.Before, To: e.After}, nil
	default:
		return DiffRange{}, fmt.Errorf("not push or pull request event: %w", titlecheck.ErrEventInvalid)
	}
}

// Describe returns a one-line summary for diagnostics.
func (e *Event) Describe() string {
	switch e.Kind() {
	case KindPullRequest:
		pr := e.PullRequest
		return fmt.Sprintf("%s: pull request #%d %s -> %s by %s", e.Repository.FullName, pr.Number, pr.Head.Ref, pr.Base.Ref, pr.User.Login)
	case KindPush:
		return fmt.Sprintf("%s: push to %s (%s...%s)", e.Repository.FullName, e.Ref, e.Before, e.After)
	default:
		return e.Repository.FullName + ": unsupported event"
	}
}
